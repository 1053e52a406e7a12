// Package bcclient provides the main entry point for creating Business Central API clients
package bcclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/bcapi-client/internal/client"
	"github.com/fivetwenty-io/bcapi-client/internal/constants"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// New creates a new Business Central API client. The endpoint defaults to
// the public service root; credentials are required up front so a
// misconfigured client fails at construction rather than on first use.
func New(config *bcapi.Config) (bcapi.Client, error) {
	if config == nil {
		return nil, bcapi.ErrConfigRequired
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	err := validateCredentials(config)
	if err != nil {
		return nil, err
	}

	if config.SkipTLSVerify && !isDevelopmentEnvironment() {
		return nil, fmt.Errorf("%w (set BCAPI_DEV_MODE=true)", bcapi.ErrSkipTLSOnlyInDev)
	}

	bcClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return bcClient, nil
}

// normalizeEndpoint applies the default service root and makes the
// endpoint scheme-qualified without a trailing slash.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// validateCredentials checks that the config carries a usable credential:
// either a static token or the full client-credentials triple.
func validateCredentials(config *bcapi.Config) error {
	if config.AccessToken != "" {
		return nil
	}

	if config.ClientID == "" || config.ClientSecret == "" {
		return bcapi.ErrCredentialsRequired
	}

	// The tenant anchors the token endpoint. An explicit TokenURL
	// (tests, sovereign clouds) stands in for it.
	if config.TenantID == "" && config.TokenURL == "" {
		return bcapi.ErrTenantIDRequired
	}

	return nil
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv("BCAPI_DEV_MODE")

	return devMode == "true" || devMode == "1"
}

// NewWithToken creates a new client with a pre-acquired access token.
func NewWithToken(endpoint, token string) (bcapi.Client, error) {
	return New(&bcapi.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NewWithClientCredentials creates a new client using the Entra ID
// client-credentials grant for the given tenant.
func NewWithClientCredentials(endpoint, tenantID, clientID, clientSecret string) (bcapi.Client, error) {
	return New(&bcapi.Config{
		APIEndpoint:  endpoint,
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}
