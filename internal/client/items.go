package client

import "github.com/fivetwenty-io/bcapi-client/pkg/bcapi"

// ItemsClient implements bcapi.ItemsClient.
type ItemsClient struct {
	resourceClient[bcapi.Item, bcapi.ItemRequest]
}

// NewItemsClient creates a new items client.
func NewItemsClient(c *Client) *ItemsClient {
	return &ItemsClient{
		resourceClient: newResourceClient[bcapi.Item, bcapi.ItemRequest](c, "/items", "item"),
	}
}
