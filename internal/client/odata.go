package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// ODataClient implements bcapi.ODataClient. The legacy OData V4 surface
// exposes pages and queries that never made it into the standard API;
// records come back as raw maps since their shape is page-defined.
type ODataClient struct {
	d dispatcher
}

// NewODataClient creates a new OData client.
func NewODataClient(c *Client) *ODataClient {
	return &ODataClient{
		d: dispatcher{client: c, mode: bcapi.ModeOData},
	}
}

// List implements bcapi.ODataClient.List.
func (c *ODataClient) List(ctx context.Context, entitySet string, params *bcapi.QueryParams) ([]map[string]interface{}, error) {
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

// Get implements bcapi.ODataClient.Get. OData keys are quoted strings.
func (c *ODataClient) Get(ctx context.Context, entitySet, key string) (map[string]interface{}, error) {
	resp, err := c.d.get(ctx, "/"+entitySet+"('"+key+"')", nil)
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

// Post implements bcapi.ODataClient.Post. Only the bound fields are sent,
// in binding order.
func (c *ODataClient) Post(ctx context.Context, entitySet string, fields *bcapi.FieldSet) (map[string]interface{}, error) {
	resp, err := c.d.post(ctx, "/"+entitySet, fields)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", entitySet, err)
	}

	var record map[string]interface{}

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", entitySet, err)
	}

	return record, nil
}
