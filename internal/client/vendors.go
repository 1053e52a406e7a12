package client

import "github.com/fivetwenty-io/bcapi-client/pkg/bcapi"

// VendorsClient implements bcapi.VendorsClient.
type VendorsClient struct {
	resourceClient[bcapi.Vendor, bcapi.VendorRequest]
}

// NewVendorsClient creates a new vendors client.
func NewVendorsClient(c *Client) *VendorsClient {
	return &VendorsClient{
		resourceClient: newResourceClient[bcapi.Vendor, bcapi.VendorRequest](c, "/vendors", "vendor"),
	}
}
