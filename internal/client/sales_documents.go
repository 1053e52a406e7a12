package client

import "github.com/fivetwenty-io/bcapi-client/pkg/bcapi"

// SalesQuotesClient implements bcapi.SalesQuotesClient.
type SalesQuotesClient struct {
	resourceClient[bcapi.SalesQuote, bcapi.SalesDocumentRequest]
}

// NewSalesQuotesClient creates a new sales quotes client.
func NewSalesQuotesClient(c *Client) *SalesQuotesClient {
	return &SalesQuotesClient{
		resourceClient: newResourceClient[bcapi.SalesQuote, bcapi.SalesDocumentRequest](c, "/salesQuotes", "sales quote"),
	}
}

// SalesOrdersClient implements bcapi.SalesOrdersClient.
type SalesOrdersClient struct {
	resourceClient[bcapi.SalesOrder, bcapi.SalesDocumentRequest]
}

// NewSalesOrdersClient creates a new sales orders client.
func NewSalesOrdersClient(c *Client) *SalesOrdersClient {
	return &SalesOrdersClient{
		resourceClient: newResourceClient[bcapi.SalesOrder, bcapi.SalesDocumentRequest](c, "/salesOrders", "sales order"),
	}
}
