package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// resourceClient is the one generic shape every company-scoped resource
// shares: build a path, attach a payload, dispatch, parse. Per-resource
// clients embed it with their entity and request types instead of
// repeating the five operations by hand.
type resourceClient[T any, R any] struct {
	d            dispatcher
	resourcePath string
	resourceName string
}

func newResourceClient[T any, R any](c *Client, resourcePath, resourceName string) resourceClient[T, R] {
	return resourceClient[T, R]{
		d:            dispatcher{client: c, mode: bcapi.ModeCompany},
		resourcePath: resourcePath,
		resourceName: resourceName,
	}
}

// entityPath addresses a single entity by GUID, e.g. /customers({id}).
func (c *resourceClient[T, R]) entityPath(id string) string {
	return c.resourcePath + "(" + id + ")"
}

// List retrieves entities, honoring any query options.
func (c *resourceClient[T, R]) List(ctx context.Context, params *bcapi.QueryParams) ([]T, error) {
	resp, err := c.d.get(ctx, c.resourcePath, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", c.resourceName, err)
	}

	var list bcapi.ListResponse[T]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.resourceName, err)
	}

	return list.Value, nil
}

// Get retrieves a single entity by id.
func (c *resourceClient[T, R]) Get(ctx context.Context, id string) (*T, error) {
	resp, err := c.d.get(ctx, c.entityPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	var entity T

	err = json.Unmarshal(resp.Body, &entity)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resourceName, err)
	}

	return &entity, nil
}

// Create creates an entity. Only the fields bound in the request are sent.
func (c *resourceClient[T, R]) Create(ctx context.Context, request *R) (*T, error) {
	resp, err := c.d.post(ctx, c.resourcePath, request)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	var entity T

	err = json.Unmarshal(resp.Body, &entity)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resourceName, err)
	}

	return &entity, nil
}

// Update applies a partial update. Only the fields bound in the request
// are sent, so everything else is left untouched upstream.
func (c *resourceClient[T, R]) Update(ctx context.Context, id string, request *R) (*T, error) {
	resp, err := c.d.patch(ctx, c.entityPath(id), request)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	var entity T

	err = json.Unmarshal(resp.Body, &entity)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resourceName, err)
	}

	return &entity, nil
}

// Delete removes an entity.
func (c *resourceClient[T, R]) Delete(ctx context.Context, id string) error {
	_, err := c.d.delete(ctx, c.entityPath(id))
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.resourceName, err)
	}

	return nil
}
