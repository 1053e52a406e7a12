package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// ExtensionsClient implements bcapi.ExtensionsClient. Each instance is
// bound to one publisher/group/version triple; records are raw maps and
// payloads are field sets, since extension schemas are not known here.
type ExtensionsClient struct {
	d dispatcher
}

// NewExtensionsClient creates a client for one extension API.
func NewExtensionsClient(c *Client, api bcapi.ExtensionAPI) *ExtensionsClient {
	return &ExtensionsClient{
		d: dispatcher{client: c, mode: bcapi.ModeExtension, ext: api},
	}
}

func (c *ExtensionsClient) entityPath(entitySet, id string) string {
	return "/" + entitySet + "(" + id + ")"
}

// List implements bcapi.ExtensionsClient.List.
func (c *ExtensionsClient) List(ctx context.Context, entitySet string, params *bcapi.QueryParams) ([]map[string]interface{}, error) {
	resp, err := c.d.get(ctx, "/"+entitySet, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", entitySet, err)
	}

	var list bcapi.ListResponse[map[string]interface{}]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", entitySet, err)
	}

	return list.Value, nil
}

// Get implements bcapi.ExtensionsClient.Get.
func (c *ExtensionsClient) Get(ctx context.Context, entitySet, id string) (map[string]interface{}, error) {
	resp, err := c.d.get(ctx, c.entityPath(entitySet, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s record: %w", entitySet, err)
	}

	var record map[string]interface{}

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", entitySet, err)
	}

	return record, nil
}

// Create implements bcapi.ExtensionsClient.Create.
func (c *ExtensionsClient) Create(ctx context.Context, entitySet string, fields *bcapi.FieldSet) (map[string]interface{}, error) {
	resp, err := c.d.post(ctx, "/"+entitySet, fields)
	if err != nil {
		return nil, fmt.Errorf("creating %s record: %w", entitySet, err)
	}

	var record map[string]interface{}

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", entitySet, err)
	}

	return record, nil
}

// Update implements bcapi.ExtensionsClient.Update. Only the bound fields
// are sent, so unbound extension fields keep their upstream values.
func (c *ExtensionsClient) Update(ctx context.Context, entitySet, id string, fields *bcapi.FieldSet) (map[string]interface{}, error) {
	resp, err := c.d.patch(ctx, c.entityPath(entitySet, id), fields)
	if err != nil {
		return nil, fmt.Errorf("updating %s record: %w", entitySet, err)
	}

	var record map[string]interface{}

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", entitySet, err)
	}

	return record, nil
}

// Delete implements bcapi.ExtensionsClient.Delete.
func (c *ExtensionsClient) Delete(ctx context.Context, entitySet, id string) error {
	_, err := c.d.delete(ctx, c.entityPath(entitySet, id))
	if err != nil {
		return fmt.Errorf("deleting %s record: %w", entitySet, err)
	}

	return nil
}
