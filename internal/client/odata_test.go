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

const odataBasePath = "/v2.0/" + TestTenantID + "/Sandbox/ODataV4/Company('CRONUS USA, Inc.')"

func TestODataClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, odataBasePath+"/Customer_Ledger_Entries", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "Open eq true", request.URL.Query().Get("$filter"))

		_, _ = writer.Write([]byte(`{
			"value": [
				{"Entry_No": 612, "Document_Type": "Invoice", "Open": true}
			]
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := bcapi.NewQueryParams().WithFilter("Open eq true")

	entries, err := client.OData().List(context.Background(), "Customer_Ledger_Entries", params)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InEpsilon(t, float64(612), entries[0]["Entry_No"], 0.001)
}

// The OData scheme addresses the company by name; names with spaces and
// punctuation are escaped in the raw path.
func TestODataClient_List_EscapesCompanyName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Contains(t, request.URL.EscapedPath(), "Company('CRONUS%20USA%2C%20Inc.')")
		_, _ = writer.Write([]byte(`{"value": []}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.OData().List(context.Background(), "Items", nil)
	require.NoError(t, err)
}

func TestODataClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, odataBasePath+"/Items('1000')", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_, _ = writer.Write([]byte(`{"No": "1000", "Description": "Bicycle"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	record, err := client.OData().Get(context.Background(), "Items", "1000")
	require.NoError(t, err)
	assert.Equal(t, "Bicycle", record["Description"])
}

func TestODataClient_Post(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, odataBasePath+"/SalesInvoices", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		require.Len(t, body, 2)
		assert.Equal(t, "10000", body["Sell_to_Customer_No"])

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"No": "103032", "Sell_to_Customer_No": "10000"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	fields := bcapi.NewFieldSet().
		SetString("Sell_to_Customer_No", "10000").
		SetString("Posting_Date", "2026-08-25")

	record, err := client.OData().Post(context.Background(), "SalesInvoices", fields)
	require.NoError(t, err)
	assert.Equal(t, "103032", record["No"])
}
