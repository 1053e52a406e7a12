package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/bcapi-client/internal/auth"
	bchttp "github.com/fivetwenty-io/bcapi-client/internal/http"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// Client implements the bcapi.Client interface. One instance is one
// logical session: it carries the scope every dispatch happens inside.
type Client struct {
	httpClient   *bchttp.Client
	tokenManager auth.TokenManager
	config       *bcapi.Config
	scope        *scope

	// Resource clients
	companies     bcapi.CompaniesClient
	customers     bcapi.CustomersClient
	contacts      bcapi.ContactsClient
	items         bcapi.ItemsClient
	vendors       bcapi.VendorsClient
	salesQuotes   bcapi.SalesQuotesClient
	salesOrders   bcapi.SalesOrdersClient
	pictures      bcapi.PicturesClient
	subscriptions bcapi.SubscriptionsClient
	environments  bcapi.EnvironmentsClient
	odata         bcapi.ODataClient
}

// createTokenManager creates the appropriate token manager based on config.
func createTokenManager(config *bcapi.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			AccessToken: config.AccessToken,
		})
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		tokenURL := config.TokenURL
		if tokenURL == "" {
			tokenURL = auth.TokenURLForTenant(config.TenantID)
		}

		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     tokenURL,
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
		})
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *bcapi.Config) []bchttp.Option {
	var httpOpts []bchttp.Option

	if config.SkipTLSVerify {
		// The bcclient facade only lets SkipTLSVerify through in
		// development mode, so this transport is never built for a
		// production configuration.
		httpOpts = append(httpOpts, bchttp.WithHTTPClient(&http.Client{
			Timeout: config.HTTPTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- Gated by BCAPI_DEV_MODE in bcclient
			},
		}))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, bchttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, bchttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, bchttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, bchttp.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new API client from config.
func New(config *bcapi.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, bcapi.ErrEndpointRequired
	}

	tokenManager := createTokenManager(config)
	httpOpts := createHTTPClientOptions(config)
	httpClient := bchttp.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		config:       config,
		scope:        newScope(config.TenantID, config.Environment),
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.companies = NewCompaniesClient(c)
	c.customers = NewCustomersClient(c)
	c.contacts = NewContactsClient(c)
	c.items = NewItemsClient(c)
	c.vendors = NewVendorsClient(c)
	c.salesQuotes = NewSalesQuotesClient(c)
	c.salesOrders = NewSalesOrdersClient(c)
	c.pictures = NewPicturesClient(c)
	c.subscriptions = NewSubscriptionsClient(c)
	c.environments = NewEnvironmentsClient(c)
	c.odata = NewODataClient(c)
}

// Authenticate forces a token exchange now. Without it the first request
// triggers the exchange lazily.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.tokenManager == nil {
		return bcapi.ErrNotAuthenticated
	}

	_, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("authenticating: %w", err)
	}

	return nil
}

// SetEnvironment implements bcapi.SessionClient.SetEnvironment.
func (c *Client) SetEnvironment(name string) {
	c.scope.setEnvironment(name)
}

// Environment implements bcapi.SessionClient.Environment.
func (c *Client) Environment() string {
	return c.scope.environmentName()
}

// SetCompany implements bcapi.SessionClient.SetCompany. It accepts a
// company id or a display name, resolves the other half from the
// environment's company list, and pins both atomically. Setting by name
// and by id for the same company therefore yields identical base URLs.
func (c *Client) SetCompany(ctx context.Context, idOrName string) error {
	companies, err := c.companies.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("resolving company %q: %w", idOrName, err)
	}

	for _, company := range companies {
		if company.ID == idOrName || company.Name == idOrName || company.DisplayName == idOrName {
			c.scope.setCompany(company.ID, company.Name)

			return nil
		}
	}

	return fmt.Errorf("resolving company %q: %w", idOrName, bcapi.ErrCompanyNotFound)
}

// Company implements bcapi.SessionClient.Company.
func (c *Client) Company() (string, string) {
	return c.scope.company()
}

// Resource client accessors

// Companies implements bcapi.ResourceClients.Companies.
func (c *Client) Companies() bcapi.CompaniesClient {
	return c.companies
}

// Customers implements bcapi.ResourceClients.Customers.
func (c *Client) Customers() bcapi.CustomersClient {
	return c.customers
}

// Contacts implements bcapi.ResourceClients.Contacts.
func (c *Client) Contacts() bcapi.ContactsClient {
	return c.contacts
}

// Items implements bcapi.ResourceClients.Items.
func (c *Client) Items() bcapi.ItemsClient {
	return c.items
}

// Vendors implements bcapi.ResourceClients.Vendors.
func (c *Client) Vendors() bcapi.VendorsClient {
	return c.vendors
}

// SalesQuotes implements bcapi.ResourceClients.SalesQuotes.
func (c *Client) SalesQuotes() bcapi.SalesQuotesClient {
	return c.salesQuotes
}

// SalesOrders implements bcapi.ResourceClients.SalesOrders.
func (c *Client) SalesOrders() bcapi.SalesOrdersClient {
	return c.salesOrders
}

// Pictures implements bcapi.ResourceClients.Pictures.
func (c *Client) Pictures() bcapi.PicturesClient {
	return c.pictures
}

// Subscriptions implements bcapi.ResourceClients.Subscriptions.
func (c *Client) Subscriptions() bcapi.SubscriptionsClient {
	return c.subscriptions
}

// Environments implements bcapi.ResourceClients.Environments.
func (c *Client) Environments() bcapi.EnvironmentsClient {
	return c.environments
}

// OData implements bcapi.ResourceClients.OData.
func (c *Client) OData() bcapi.ODataClient {
	return c.odata
}

// Extensions implements bcapi.ResourceClients.Extensions. Each call binds
// a publisher/group/version triple; completeness is validated at dispatch.
func (c *Client) Extensions(api bcapi.ExtensionAPI) bcapi.ExtensionsClient {
	return NewExtensionsClient(c, api)
}
