package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/bcapi-client/internal/client"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

func TestSalesQuotesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, companyBasePath+"/salesQuotes", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_, _ = writer.Write([]byte(`{
			"value": [
				{"id": "quote-1", "number": "Q-1001", "customerName": "Acme", "status": "Draft"}
			]
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	quotes, err := client.SalesQuotes().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Q-1001", quotes[0].Number)
	assert.Equal(t, "Draft", quotes[0].Status)
}

func TestSalesQuotesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, companyBasePath+"/salesQuotes", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		require.Len(t, body, 1)
		assert.Equal(t, "cust-1", body["customerId"])

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"id": "quote-new", "number": "Q-1002", "customerId": "cust-1"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	quote, err := client.SalesQuotes().Create(context.Background(), &bcapi.SalesDocumentRequest{
		CustomerID: stringPtr("cust-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "quote-new", quote.ID)
}

func TestSalesOrdersClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, companyBasePath+"/salesOrders(order-1)", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "*", request.Header.Get("If-Match"))

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		require.Len(t, body, 1)
		assert.Equal(t, "PO-778", body["externalDocumentNumber"])

		_, _ = writer.Write([]byte(`{"id": "order-1", "number": "O-2001", "externalDocumentNumber": "PO-778"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	order, err := client.SalesOrders().Update(context.Background(), "order-1", &bcapi.SalesDocumentRequest{
		ExternalDocumentNumber: stringPtr("PO-778"),
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-778", order.ExternalDocumentNumber)
}

func TestSalesOrdersClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, companyBasePath+"/salesOrders(order-1)", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.SalesOrders().Delete(context.Background(), "order-1")
	require.NoError(t, err)
}
