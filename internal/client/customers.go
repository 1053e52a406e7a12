package client

import "github.com/fivetwenty-io/bcapi-client/pkg/bcapi"

// CustomersClient implements bcapi.CustomersClient.
type CustomersClient struct {
	resourceClient[bcapi.Customer, bcapi.CustomerRequest]
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(c *Client) *CustomersClient {
	return &CustomersClient{
		resourceClient: newResourceClient[bcapi.Customer, bcapi.CustomerRequest](c, "/customers", "customer"),
	}
}
