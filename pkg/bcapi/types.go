package bcapi

import (
	"context"
	"time"
)

// Mode selects the addressing scheme used to build the base path of a
// request. The service segments its surface per audience, so the scheme is
// an explicit discriminant rather than something inferred from the path.
type Mode string

const (
	// ModeCompany addresses the standard API inside the active company:
	// /v2.0/{environment}/api/v2.0/companies({companyId}).
	ModeCompany Mode = "company"

	// ModeEnvironment addresses the standard API at environment scope,
	// without a company: /v2.0/{environment}/api/v2.0.
	ModeEnvironment Mode = "environment"

	// ModeOData addresses the legacy OData V4 endpoint:
	// /v2.0/{tenantId}/{environment}/ODataV4/Company('{companyName}').
	ModeOData Mode = "odata"

	// ModeExtension addresses a partner extension API:
	// /v2.0/{tenantId}/{environment}/api/{publisher}/{group}/{version}/Companies({companyId}).
	ModeExtension Mode = "extension"

	// ModeAdmin addresses the admin center API, used for environment
	// discovery before an environment is pinned:
	// /admin/v2.21/applications/businesscentral.
	ModeAdmin Mode = "admin"
)

// ExtensionAPI identifies a partner extension API. All three parts are
// required together; a request with any one missing fails before any
// network call.
type ExtensionAPI struct {
	Publisher string
	Group     string
	Version   string
}

// Complete reports whether all three parts are set.
func (e ExtensionAPI) Complete() bool {
	return e.Publisher != "" && e.Group != "" && e.Version != ""
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a bcapi.Client.
//
// Authentication uses the Entra ID client-credentials grant: TenantID,
// ClientID and ClientSecret are exchanged for a bearer token at the tenant's
// v2.0 token endpoint. AccessToken, if set, is used directly as a static
// bearer token instead; it is never refreshed. The token's one-hour lifetime
// is enforced upstream: after expiry a fresh exchange happens on the next
// request when credentials are configured, and requests fail with an
// authorization error when only a static token is.
type Config struct {
	// APIEndpoint is the service root. Defaults to
	// https://api.businesscentral.dynamics.com when empty.
	APIEndpoint string

	// TenantID is the Entra ID directory (tenant) identifier. It is also
	// part of the OData and extension addressing schemes.
	TenantID string

	// ClientID and ClientSecret are the app registration credentials for
	// the client-credentials grant.
	ClientID     string
	ClientSecret string

	// AccessToken is a pre-acquired bearer token used as-is.
	AccessToken string

	// TokenURL overrides the derived Entra token endpoint. Mainly for
	// tests.
	TokenURL string

	// Environment optionally pins the initial environment name.
	Environment string

	// HTTPTimeout bounds each request. Zero means the default.
	HTTPTimeout time.Duration

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// SkipTLSVerify disables TLS verification. Gated by BCAPI_DEV_MODE.
	SkipTLSVerify bool

	// Debug enables request/response logging through Logger. Logging is
	// observability only and never alters control flow.
	Debug  bool
	Logger Logger
}

// SessionClient carries the scope a client dispatches inside: tenant →
// environment → company. One client instance is one logical session.
type SessionClient interface {
	// Authenticate forces a token exchange now instead of on first use.
	Authenticate(ctx context.Context) error

	// SetEnvironment pins the active environment by name.
	SetEnvironment(name string)

	// Environment returns the active environment name, or "".
	Environment() string

	// SetCompany pins the active company. It accepts a company id or a
	// display name, resolves the other half from the environment's company
	// list, and sets both atomically.
	SetCompany(ctx context.Context, idOrName string) error

	// Company returns the active company id and name, or empty strings.
	Company() (id, name string)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Companies() CompaniesClient
	Customers() CustomersClient
	Contacts() ContactsClient
	Items() ItemsClient
	Vendors() VendorsClient
	SalesQuotes() SalesQuotesClient
	SalesOrders() SalesOrdersClient
	Pictures() PicturesClient
	Subscriptions() SubscriptionsClient
	Environments() EnvironmentsClient
	OData() ODataClient
	Extensions(api ExtensionAPI) ExtensionsClient
}

// Client is the full client surface.
type Client interface {
	SessionClient
	ResourceClients
}

// CompaniesClient lists and resolves companies at environment scope.
type CompaniesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Company, error)
	Get(ctx context.Context, id string) (*Company, error)
	// GetByName resolves a company by display name. Returns
	// ErrCompanyNotFound when no company matches.
	GetByName(ctx context.Context, name string) (*Company, error)
}

// CustomersClient manages customers in the active company.
type CustomersClient interface {
	List(ctx context.Context, params *QueryParams) ([]Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, request *CustomerRequest) (*Customer, error)
	Update(ctx context.Context, id string, request *CustomerRequest) (*Customer, error)
	Delete(ctx context.Context, id string) error
}

// ContactsClient manages contacts in the active company.
type ContactsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Contact, error)
	Get(ctx context.Context, id string) (*Contact, error)
	Create(ctx context.Context, request *ContactRequest) (*Contact, error)
	Update(ctx context.Context, id string, request *ContactRequest) (*Contact, error)
	Delete(ctx context.Context, id string) error
}

// ItemsClient manages items in the active company.
type ItemsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, request *ItemRequest) (*Item, error)
	Update(ctx context.Context, id string, request *ItemRequest) (*Item, error)
	Delete(ctx context.Context, id string) error
}

// VendorsClient manages vendors in the active company.
type VendorsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Vendor, error)
	Get(ctx context.Context, id string) (*Vendor, error)
	Create(ctx context.Context, request *VendorRequest) (*Vendor, error)
	Update(ctx context.Context, id string, request *VendorRequest) (*Vendor, error)
	Delete(ctx context.Context, id string) error
}

// SalesQuotesClient manages sales quotes in the active company.
type SalesQuotesClient interface {
	List(ctx context.Context, params *QueryParams) ([]SalesQuote, error)
	Get(ctx context.Context, id string) (*SalesQuote, error)
	Create(ctx context.Context, request *SalesDocumentRequest) (*SalesQuote, error)
	Update(ctx context.Context, id string, request *SalesDocumentRequest) (*SalesQuote, error)
	Delete(ctx context.Context, id string) error
}

// SalesOrdersClient manages sales orders in the active company.
type SalesOrdersClient interface {
	List(ctx context.Context, params *QueryParams) ([]SalesOrder, error)
	Get(ctx context.Context, id string) (*SalesOrder, error)
	Create(ctx context.Context, request *SalesDocumentRequest) (*SalesOrder, error)
	Update(ctx context.Context, id string, request *SalesDocumentRequest) (*SalesOrder, error)
	Delete(ctx context.Context, id string) error
}

// PicturesClient manages the picture attached to an entity (customers,
// items, vendors) in the active company.
type PicturesClient interface {
	// Get fetches picture metadata for parentType/parentID, e.g.
	// ("items", itemID).
	Get(ctx context.Context, parentType, parentID string) (*Picture, error)
	// Download fetches the raw picture content.
	Download(ctx context.Context, parentType, parentID string) ([]byte, error)
	// Upload replaces the picture content from a file on disk.
	Upload(ctx context.Context, parentType, parentID, filePath string) error
	// Delete removes the picture.
	Delete(ctx context.Context, parentType, parentID string) error
}

// SubscriptionsClient manages webhook subscriptions at environment scope.
type SubscriptionsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Subscription, error)
	Get(ctx context.Context, id string) (*Subscription, error)
	Create(ctx context.Context, request *SubscriptionRequest) (*Subscription, error)
	// Renew extends a subscription's expiration window.
	Renew(ctx context.Context, id string, request *SubscriptionRequest) (*Subscription, error)
	Delete(ctx context.Context, id string) error
}

// EnvironmentsClient lists environments through the admin center API. Only
// a token is required; this is how an environment name is discovered before
// SetEnvironment pins one.
type EnvironmentsClient interface {
	List(ctx context.Context) ([]Environment, error)
	Get(ctx context.Context, name string) (*Environment, error)
}

// ODataClient reads arbitrary entity sets through the legacy OData V4
// endpoint, addressed by company name.
type ODataClient interface {
	List(ctx context.Context, entitySet string, params *QueryParams) ([]map[string]interface{}, error)
	Get(ctx context.Context, entitySet, key string) (map[string]interface{}, error)
	// Post invokes a bound action or inserts into an entity set.
	Post(ctx context.Context, entitySet string, fields *FieldSet) (map[string]interface{}, error)
}

// ExtensionsClient performs CRUD against a partner extension API whose
// record schema is not known at compile time. Payloads are FieldSets so
// only explicitly bound fields are sent.
type ExtensionsClient interface {
	List(ctx context.Context, entitySet string, params *QueryParams) ([]map[string]interface{}, error)
	Get(ctx context.Context, entitySet, id string) (map[string]interface{}, error)
	Create(ctx context.Context, entitySet string, fields *FieldSet) (map[string]interface{}, error)
	Update(ctx context.Context, entitySet, id string, fields *FieldSet) (map[string]interface{}, error)
	Delete(ctx context.Context, entitySet, id string) error
}
