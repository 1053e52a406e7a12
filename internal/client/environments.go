package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// EnvironmentsClient implements bcapi.EnvironmentsClient. It goes through
// the admin center API, which needs only a token, so environments can be
// discovered before any environment is pinned.
type EnvironmentsClient struct {
	d dispatcher
}

// NewEnvironmentsClient creates a new environments client.
func NewEnvironmentsClient(c *Client) *EnvironmentsClient {
	return &EnvironmentsClient{
		d: dispatcher{client: c, mode: bcapi.ModeAdmin},
	}
}

// List implements bcapi.EnvironmentsClient.List.
func (c *EnvironmentsClient) List(ctx context.Context) ([]bcapi.Environment, error) {
	resp, err := c.d.get(ctx, "/environments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}

	var list bcapi.ListResponse[bcapi.Environment]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing environment list response: %w", err)
	}

	return list.Value, nil
}

// Get implements bcapi.EnvironmentsClient.Get.
func (c *EnvironmentsClient) Get(ctx context.Context, name string) (*bcapi.Environment, error) {
	resp, err := c.d.get(ctx, "/environments/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("getting environment: %w", err)
	}

	var environment bcapi.Environment

	err = json.Unmarshal(resp.Body, &environment)
	if err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &environment, nil
}
