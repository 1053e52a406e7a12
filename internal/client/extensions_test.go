package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/bcapi-client/internal/client"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

const extensionBasePath = "/v2.0/" + TestTenantID + "/Sandbox" +
	"/api/contoso/payroll/v1.0/Companies(" + TestCompanyID + ")"

var payrollAPI = bcapi.ExtensionAPI{Publisher: "contoso", Group: "payroll", Version: "v1.0"}

func TestExtensionsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, extensionBasePath+"/timeSheets", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_, _ = writer.Write([]byte(`{
			"value": [
				{"id": "ts-1", "employeeNo": "E-100", "hours": 7.5}
			]
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	records, err := client.Extensions(payrollAPI).List(context.Background(), "timeSheets", nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "E-100", records[0]["employeeNo"])
}

func TestExtensionsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, extensionBasePath+"/timeSheets(ts-1)", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_, _ = writer.Write([]byte(`{"id": "ts-1", "employeeNo": "E-100"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	record, err := client.Extensions(payrollAPI).Get(context.Background(), "timeSheets", "ts-1")
	require.NoError(t, err)
	assert.Equal(t, "ts-1", record["id"])
}

// Field sets serialize in binding order with exactly the bound fields, so
// extension records are never clobbered by unset columns.
func TestExtensionsClient_Create_FieldOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, extensionBasePath+"/timeSheets", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		body, _ := io.ReadAll(request.Body)
		assert.JSONEq(t, `{"employeeNo": "E-100", "hours": 7.5}`, string(body))
		assert.Equal(t, `{"employeeNo":"E-100","hours":7.5}`, string(body))

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"id": "ts-new", "employeeNo": "E-100", "hours": 7.5}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	fields := bcapi.NewFieldSet().
		SetString("employeeNo", "E-100").
		SetDecimal("hours", 7.5)

	record, err := client.Extensions(payrollAPI).Create(context.Background(), "timeSheets", fields)
	require.NoError(t, err)
	assert.Equal(t, "ts-new", record["id"])
}

func TestExtensionsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, extensionBasePath+"/timeSheets(ts-1)", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "*", request.Header.Get("If-Match"))

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		require.Len(t, body, 1)
		assert.InEpsilon(t, 8.0, body["hours"], 0.001)

		_, _ = writer.Write([]byte(`{"id": "ts-1", "employeeNo": "E-100", "hours": 8.0}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	fields := bcapi.NewFieldSet().SetDecimal("hours", 8.0)

	record, err := client.Extensions(payrollAPI).Update(context.Background(), "timeSheets", "ts-1", fields)
	require.NoError(t, err)
	assert.InEpsilon(t, 8.0, record["hours"], 0.001)
}

func TestExtensionsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, extensionBasePath+"/timeSheets(ts-1)", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Extensions(payrollAPI).Delete(context.Background(), "timeSheets", "ts-1")
	require.NoError(t, err)
}
