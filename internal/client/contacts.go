package client

import "github.com/fivetwenty-io/bcapi-client/pkg/bcapi"

// ContactsClient implements bcapi.ContactsClient.
type ContactsClient struct {
	resourceClient[bcapi.Contact, bcapi.ContactRequest]
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(c *Client) *ContactsClient {
	return &ContactsClient{
		resourceClient: newResourceClient[bcapi.Contact, bcapi.ContactRequest](c, "/contacts", "contact"),
	}
}
