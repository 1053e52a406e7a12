//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcclient"
)

// TestConfig holds the connection settings for integration tests. They run
// against a real tenant and are skipped when the environment is not set up.
type TestConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	Environment  string
	Company      string
	APIEndpoint  string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		TenantID:     os.Getenv("BC_TENANT_ID"),
		ClientID:     os.Getenv("BC_CLIENT_ID"),
		ClientSecret: os.Getenv("BC_CLIENT_SECRET"),
		Environment:  os.Getenv("BC_ENVIRONMENT"),
		Company:      os.Getenv("BC_COMPANY"),
		APIEndpoint:  os.Getenv("BC_API_ENDPOINT"),
	}
}

func (c *TestConfig) complete() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != "" &&
		c.Environment != "" && c.Company != ""
}

// newClient builds an authenticated client from the test configuration, or
// skips the test when credentials are absent.
func newClient(t *testing.T) (bcapi.Client, *TestConfig) {
	t.Helper()

	config := LoadTestConfig()
	if !config.complete() {
		t.Skip("integration environment not configured, set BC_TENANT_ID, BC_CLIENT_ID, BC_CLIENT_SECRET, BC_ENVIRONMENT, BC_COMPANY")
	}

	client, err := bcclient.New(&bcapi.Config{
		APIEndpoint:  config.APIEndpoint,
		TenantID:     config.TenantID,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Environment:  config.Environment,
	})
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client, config
}
