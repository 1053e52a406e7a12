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

const environmentBasePath = "/v2.0/Sandbox/api/v2.0"

func TestSubscriptionsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, environmentBasePath+"/subscriptions", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_, _ = writer.Write([]byte(`{
			"value": [
				{"subscriptionId": "sub-1", "notificationUrl": "https://hooks.example.com/bc", "resource": "/api/v2.0/companies(11111111-1111-1111-1111-111111111111)/customers"}
			]
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	subscriptions, err := client.Subscriptions().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "sub-1", subscriptions[0].SubscriptionID)
}

func TestSubscriptionsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, environmentBasePath+"/subscriptions", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "https://hooks.example.com/bc", body["notificationUrl"])
		assert.Equal(t, "secret-state", body["clientState"])

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"subscriptionId": "sub-new", "notificationUrl": "https://hooks.example.com/bc", "resource": "customers"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	subscription, err := client.Subscriptions().Create(context.Background(), &bcapi.SubscriptionRequest{
		NotificationURL: stringPtr("https://hooks.example.com/bc"),
		Resource:        stringPtr("customers"),
		ClientState:     stringPtr("secret-state"),
	})
	require.NoError(t, err)
	assert.Equal(t, "sub-new", subscription.SubscriptionID)
}

// Renewal is a PATCH against the quoted subscription key, so the
// concurrency header is attached.
func TestSubscriptionsClient_Renew(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, environmentBasePath+"/subscriptions('sub-1')", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "*", request.Header.Get("If-Match"))

		_, _ = writer.Write([]byte(`{"subscriptionId": "sub-1", "notificationUrl": "https://hooks.example.com/bc", "resource": "customers"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	subscription, err := client.Subscriptions().Renew(context.Background(), "sub-1", &bcapi.SubscriptionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", subscription.SubscriptionID)
}

func TestSubscriptionsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, environmentBasePath+"/subscriptions('sub-1')", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Subscriptions().Delete(context.Background(), "sub-1")
	require.NoError(t, err)
}
