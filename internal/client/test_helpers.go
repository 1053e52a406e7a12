package client

import (
	"errors"

	"github.com/fivetwenty-io/bcapi-client/internal/auth"
	bchttp "github.com/fivetwenty-io/bcapi-client/internal/http"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// Test static errors.
var (
	ErrTestSomeError = errors.New("some error")
)

// Scope identifiers used across client tests.
const (
	TestTenantID    = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	TestEnvironment = "Sandbox"
	TestCompanyID   = "11111111-1111-1111-1111-111111111111"
	TestCompanyName = "CRONUS USA, Inc."
)

// NewTestClient creates a client against a test server with a static
// bearer token and a fully pinned scope, so company-scoped requests
// dispatch without any setup calls. Tests that exercise the setup steps
// themselves clear the scope or build a client through New instead.
func NewTestClient(baseURL string) *Client {
	tokenManager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		AccessToken: "test-token",
	})

	client := &Client{
		httpClient:   bchttp.NewClient(baseURL, tokenManager),
		tokenManager: tokenManager,
		config:       &bcapi.Config{APIEndpoint: baseURL, TenantID: TestTenantID},
		scope:        newScope(TestTenantID, TestEnvironment),
	}

	client.scope.setCompany(TestCompanyID, TestCompanyName)
	client.initializeResourceClients()

	return client
}

// NewUnauthenticatedTestClient creates a client with no token manager.
// Every dispatch fails with bcapi.ErrNotAuthenticated before reaching the
// network.
func NewUnauthenticatedTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: bchttp.NewClient(baseURL, nil),
		config:     &bcapi.Config{APIEndpoint: baseURL},
		scope:      newScope("", ""),
	}

	client.initializeResourceClients()

	return client
}
