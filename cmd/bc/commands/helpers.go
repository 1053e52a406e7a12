package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/bcapi-client/internal/constants"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML indent for rendered output.
	defaultYAMLIndent = 2

	Masked = "***"
)

// CreateClient builds a client from the merged flag, environment and config
// file settings. The environment is pinned from configuration when present;
// the company is not, since not every command needs one.
func CreateClient() (bcapi.Client, error) {
	config := &bcapi.Config{
		APIEndpoint:   viper.GetString("api"),
		TenantID:      viper.GetString("tenant"),
		ClientID:      viper.GetString("client_id"),
		ClientSecret:  viper.GetString("client_secret"),
		AccessToken:   viper.GetString("access_token"),
		Environment:   viper.GetString("environment"),
		SkipTLSVerify: viper.GetBool("skip_ssl_validation"),
	}

	if config.AccessToken == "" && (config.ClientID == "" || config.ClientSecret == "") {
		return nil, constants.ErrNotLoggedIn
	}

	client, err := bcclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// CreateCompanyClient builds a client and pins the configured company, for
// commands that operate on company-scoped records.
func CreateCompanyClient(ctx context.Context) (bcapi.Client, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	if client.Environment() == "" {
		return nil, constants.ErrNoEnvironment
	}

	company := viper.GetString("company")
	if company == "" {
		return nil, constants.ErrNoCompany
	}

	err = client.SetCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("selecting company: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// buildListParams assembles the common list options shared by every list
// command.
func buildListParams(filter string, top int) *bcapi.QueryParams {
	params := bcapi.NewQueryParams()

	if filter != "" {
		params.WithFilter(filter)
	}

	if top > 0 {
		params.WithTop(top)
	}

	return params
}

// formatAmount renders a currency amount, or N/A for zero-valued records.
func formatAmount(amount float64, currencyCode string) string {
	if amount == 0 {
		return NotAvailable
	}

	if currencyCode == "" {
		return fmt.Sprintf("%.2f", amount)
	}

	return fmt.Sprintf("%.2f %s", amount, currencyCode)
}
