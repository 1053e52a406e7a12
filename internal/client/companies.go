package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// CompaniesClient implements bcapi.CompaniesClient. Companies are listed
// at environment scope: they are what a company scope is pinned from.
type CompaniesClient struct {
	d dispatcher
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(c *Client) *CompaniesClient {
	return &CompaniesClient{
		d: dispatcher{client: c, mode: bcapi.ModeEnvironment},
	}
}

// List implements bcapi.CompaniesClient.List.
func (c *CompaniesClient) List(ctx context.Context, params *bcapi.QueryParams) ([]bcapi.Company, error) {
	resp, err := c.d.get(ctx, "/companies", queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	var list bcapi.ListResponse[bcapi.Company]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing company list response: %w", err)
	}

	return list.Value, nil
}

// Get implements bcapi.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, id string) (*bcapi.Company, error) {
	resp, err := c.d.get(ctx, "/companies("+id+")", nil)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	var company bcapi.Company

	err = json.Unmarshal(resp.Body, &company)
	if err != nil {
		return nil, fmt.Errorf("parsing company response: %w", err)
	}

	return &company, nil
}

// GetByName implements bcapi.CompaniesClient.GetByName. Both the name and
// displayName fields are matched, since callers see displayName in the UI
// but the OData addressing scheme uses name.
func (c *CompaniesClient) GetByName(ctx context.Context, name string) (*bcapi.Company, error) {
	companies, err := c.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	for _, company := range companies {
		if company.Name == name || company.DisplayName == name {
			return &company, nil
		}
	}

	return nil, fmt.Errorf("company %q: %w", name, bcapi.ErrCompanyNotFound)
}
