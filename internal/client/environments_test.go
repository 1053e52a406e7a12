package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/bcapi-client/internal/client"
)

func TestEnvironmentsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/v2.21/applications/businesscentral/environments", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_, _ = writer.Write([]byte(`{
			"value": [
				{"name": "Production", "type": "Production", "countryCode": "US", "status": "Active"},
				{"name": "Sandbox", "type": "Sandbox", "countryCode": "US", "status": "Active"}
			]
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	environments, err := client.Environments().List(context.Background())
	require.NoError(t, err)
	require.Len(t, environments, 2)
	assert.Equal(t, "Production", environments[0].Name)
	assert.Equal(t, "Sandbox", environments[1].Type)
}

// Environment discovery must work before any environment is pinned; only a
// token is required.
func TestEnvironmentsClient_List_WithoutEnvironment(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"value": [{"name": "Production"}]}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	client.SetEnvironment("")

	environments, err := client.Environments().List(context.Background())
	require.NoError(t, err)
	require.Len(t, environments, 1)
}

func TestEnvironmentsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/admin/v2.21/applications/businesscentral/environments/Production", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_, _ = writer.Write([]byte(`{"name": "Production", "type": "Production", "applicationVersion": "24.3.21374.0"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	environment, err := client.Environments().Get(context.Background(), "Production")
	require.NoError(t, err)
	assert.Equal(t, "24.3.21374.0", environment.ApplicationVersion)
}
