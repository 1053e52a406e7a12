package bcapi

import "time"

// ListResponse is the OData collection envelope every list endpoint returns.
type ListResponse[T any] struct {
	Context  string `json:"@odata.context,omitempty"`
	Value    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink,omitempty"`
}

// Company is a ledger scope inside an environment. Business records live
// under a company.
type Company struct {
	ID                string `json:"id"`
	SystemVersion     string `json:"systemVersion,omitempty"`
	Name              string `json:"name"`
	DisplayName       string `json:"displayName"`
	BusinessProfileID string `json:"businessProfileId,omitempty"`
}

// Customer represents a customer record.
type Customer struct {
	Etag                  string     `json:"@odata.etag,omitempty"`
	ID                    string     `json:"id"`
	Number                string     `json:"number"`
	DisplayName           string     `json:"displayName"`
	Type                  string     `json:"type,omitempty"`
	AddressLine1          string     `json:"addressLine1,omitempty"`
	AddressLine2          string     `json:"addressLine2,omitempty"`
	City                  string     `json:"city,omitempty"`
	State                 string     `json:"state,omitempty"`
	Country               string     `json:"country,omitempty"`
	PostalCode            string     `json:"postalCode,omitempty"`
	PhoneNumber           string     `json:"phoneNumber,omitempty"`
	Email                 string     `json:"email,omitempty"`
	Website               string     `json:"website,omitempty"`
	TaxRegistrationNumber string     `json:"taxRegistrationNumber,omitempty"`
	CurrencyCode          string     `json:"currencyCode,omitempty"`
	PaymentTermsID        string     `json:"paymentTermsId,omitempty"`
	Blocked               string     `json:"blocked,omitempty"`
	Balance               float64    `json:"balance,omitempty"`
	LastModified          *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// CustomerRequest carries the fields of a customer create or update. Nil
// fields are not serialized, so an update touches only the fields the
// caller bound; a pointer to the empty string clears the field upstream.
type CustomerRequest struct {
	Number                *string  `json:"number,omitempty"`
	DisplayName           *string  `json:"displayName,omitempty"`
	Type                  *string  `json:"type,omitempty"`
	AddressLine1          *string  `json:"addressLine1,omitempty"`
	AddressLine2          *string  `json:"addressLine2,omitempty"`
	City                  *string  `json:"city,omitempty"`
	State                 *string  `json:"state,omitempty"`
	Country               *string  `json:"country,omitempty"`
	PostalCode            *string  `json:"postalCode,omitempty"`
	PhoneNumber           *string  `json:"phoneNumber,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	Website               *string  `json:"website,omitempty"`
	TaxRegistrationNumber *string  `json:"taxRegistrationNumber,omitempty"`
	CurrencyCode          *string  `json:"currencyCode,omitempty"`
	PaymentTermsID        *string  `json:"paymentTermsId,omitempty"`
	Blocked               *string  `json:"blocked,omitempty"`
	CreditLimit           *float64 `json:"creditLimit,omitempty"`
}

// Contact represents a contact record.
type Contact struct {
	Etag         string     `json:"@odata.etag,omitempty"`
	ID           string     `json:"id"`
	Number       string     `json:"number"`
	Type         string     `json:"type,omitempty"`
	DisplayName  string     `json:"displayName"`
	CompanyName  string     `json:"companyName,omitempty"`
	AddressLine1 string     `json:"addressLine1,omitempty"`
	AddressLine2 string     `json:"addressLine2,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	Country      string     `json:"country,omitempty"`
	PostalCode   string     `json:"postalCode,omitempty"`
	PhoneNumber  string     `json:"phoneNumber,omitempty"`
	MobileNumber string     `json:"mobilePhoneNumber,omitempty"`
	Email        string     `json:"email,omitempty"`
	LastModified *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// ContactRequest carries the fields of a contact create or update.
type ContactRequest struct {
	Number       *string `json:"number,omitempty"`
	Type         *string `json:"type,omitempty"`
	DisplayName  *string `json:"displayName,omitempty"`
	CompanyName  *string `json:"companyName,omitempty"`
	AddressLine1 *string `json:"addressLine1,omitempty"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	PostalCode   *string `json:"postalCode,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	MobileNumber *string `json:"mobilePhoneNumber,omitempty"`
	Email        *string `json:"email,omitempty"`
}

// Item represents an inventory item.
type Item struct {
	Etag              string     `json:"@odata.etag,omitempty"`
	ID                string     `json:"id"`
	Number            string     `json:"number"`
	DisplayName       string     `json:"displayName"`
	Type              string     `json:"type,omitempty"`
	ItemCategoryCode  string     `json:"itemCategoryCode,omitempty"`
	Blocked           bool       `json:"blocked,omitempty"`
	GTIN              string     `json:"gtin,omitempty"`
	Inventory         float64    `json:"inventory,omitempty"`
	UnitPrice         float64    `json:"unitPrice,omitempty"`
	UnitCost          float64    `json:"unitCost,omitempty"`
	TaxGroupCode      string     `json:"taxGroupCode,omitempty"`
	BaseUnitOfMeasure string     `json:"baseUnitOfMeasureCode,omitempty"`
	LastModified      *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// ItemRequest carries the fields of an item create or update.
type ItemRequest struct {
	Number            *string  `json:"number,omitempty"`
	DisplayName       *string  `json:"displayName,omitempty"`
	Type              *string  `json:"type,omitempty"`
	ItemCategoryCode  *string  `json:"itemCategoryCode,omitempty"`
	Blocked           *bool    `json:"blocked,omitempty"`
	GTIN              *string  `json:"gtin,omitempty"`
	UnitPrice         *float64 `json:"unitPrice,omitempty"`
	UnitCost          *float64 `json:"unitCost,omitempty"`
	TaxGroupCode      *string  `json:"taxGroupCode,omitempty"`
	BaseUnitOfMeasure *string  `json:"baseUnitOfMeasureCode,omitempty"`
}

// Vendor represents a vendor record.
type Vendor struct {
	Etag                  string     `json:"@odata.etag,omitempty"`
	ID                    string     `json:"id"`
	Number                string     `json:"number"`
	DisplayName           string     `json:"displayName"`
	AddressLine1          string     `json:"addressLine1,omitempty"`
	AddressLine2          string     `json:"addressLine2,omitempty"`
	City                  string     `json:"city,omitempty"`
	State                 string     `json:"state,omitempty"`
	Country               string     `json:"country,omitempty"`
	PostalCode            string     `json:"postalCode,omitempty"`
	PhoneNumber           string     `json:"phoneNumber,omitempty"`
	Email                 string     `json:"email,omitempty"`
	Website               string     `json:"website,omitempty"`
	TaxRegistrationNumber string     `json:"taxRegistrationNumber,omitempty"`
	CurrencyCode          string     `json:"currencyCode,omitempty"`
	Blocked               string     `json:"blocked,omitempty"`
	Balance               float64    `json:"balance,omitempty"`
	LastModified          *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// VendorRequest carries the fields of a vendor create or update.
type VendorRequest struct {
	Number                *string `json:"number,omitempty"`
	DisplayName           *string `json:"displayName,omitempty"`
	AddressLine1          *string `json:"addressLine1,omitempty"`
	AddressLine2          *string `json:"addressLine2,omitempty"`
	City                  *string `json:"city,omitempty"`
	State                 *string `json:"state,omitempty"`
	Country               *string `json:"country,omitempty"`
	PostalCode            *string `json:"postalCode,omitempty"`
	PhoneNumber           *string `json:"phoneNumber,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Website               *string `json:"website,omitempty"`
	TaxRegistrationNumber *string `json:"taxRegistrationNumber,omitempty"`
	CurrencyCode          *string `json:"currencyCode,omitempty"`
	Blocked               *string `json:"blocked,omitempty"`
}

// SalesQuote represents a sales quote document.
type SalesQuote struct {
	Etag                    string     `json:"@odata.etag,omitempty"`
	ID                      string     `json:"id"`
	Number                  string     `json:"number"`
	ExternalDocumentNumber  string     `json:"externalDocumentNumber,omitempty"`
	DocumentDate            string     `json:"documentDate,omitempty"`
	DueDate                 string     `json:"dueDate,omitempty"`
	CustomerID              string     `json:"customerId,omitempty"`
	CustomerNumber          string     `json:"customerNumber,omitempty"`
	CustomerName            string     `json:"customerName,omitempty"`
	CurrencyCode            string     `json:"currencyCode,omitempty"`
	Status                  string     `json:"status,omitempty"`
	TotalAmountExcludingTax float64    `json:"totalAmountExcludingTax,omitempty"`
	TotalTaxAmount          float64    `json:"totalTaxAmount,omitempty"`
	TotalAmountIncludingTax float64    `json:"totalAmountIncludingTax,omitempty"`
	LastModified            *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// SalesOrder represents a sales order document.
type SalesOrder struct {
	Etag                    string     `json:"@odata.etag,omitempty"`
	ID                      string     `json:"id"`
	Number                  string     `json:"number"`
	ExternalDocumentNumber  string     `json:"externalDocumentNumber,omitempty"`
	OrderDate               string     `json:"orderDate,omitempty"`
	CustomerID              string     `json:"customerId,omitempty"`
	CustomerNumber          string     `json:"customerNumber,omitempty"`
	CustomerName            string     `json:"customerName,omitempty"`
	CurrencyCode            string     `json:"currencyCode,omitempty"`
	Status                  string     `json:"status,omitempty"`
	FullyShipped            bool       `json:"fullyShipped,omitempty"`
	TotalAmountExcludingTax float64    `json:"totalAmountExcludingTax,omitempty"`
	TotalTaxAmount          float64    `json:"totalTaxAmount,omitempty"`
	TotalAmountIncludingTax float64    `json:"totalAmountIncludingTax,omitempty"`
	LastModified            *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// SalesDocumentRequest carries the header fields of a sales quote or order
// create or update. Quotes and orders share the writable header surface.
type SalesDocumentRequest struct {
	ExternalDocumentNumber *string `json:"externalDocumentNumber,omitempty"`
	DocumentDate           *string `json:"documentDate,omitempty"`
	OrderDate              *string `json:"orderDate,omitempty"`
	DueDate                *string `json:"dueDate,omitempty"`
	CustomerID             *string `json:"customerId,omitempty"`
	CustomerNumber         *string `json:"customerNumber,omitempty"`
	CurrencyCode           *string `json:"currencyCode,omitempty"`
}

// Picture is the metadata of a picture attached to an entity.
type Picture struct {
	ID          string `json:"id"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	ContentLink string `json:"pictureContent@odata.mediaReadLink,omitempty"`
}

// Subscription is a webhook subscription registered at environment scope.
type Subscription struct {
	Etag               string     `json:"@odata.etag,omitempty"`
	SubscriptionID     string     `json:"subscriptionId"`
	NotificationURL    string     `json:"notificationUrl"`
	Resource           string     `json:"resource"`
	UserID             string     `json:"userId,omitempty"`
	ClientState        string     `json:"clientState,omitempty"`
	ExpirationDateTime *time.Time `json:"expirationDateTime,omitempty"`
	LastModified       *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// SubscriptionRequest carries the fields of a subscription create or renew.
type SubscriptionRequest struct {
	NotificationURL *string `json:"notificationUrl,omitempty"`
	Resource        *string `json:"resource,omitempty"`
	ClientState     *string `json:"clientState,omitempty"`
}

// Environment is a named deployment instance, as reported by the admin
// center API.
type Environment struct {
	Name                string `json:"name"`
	Type                string `json:"type,omitempty"`
	CountryCode         string `json:"countryCode,omitempty"`
	ApplicationVersion  string `json:"applicationVersion,omitempty"`
	PlatformVersion     string `json:"platformVersion,omitempty"`
	Status              string `json:"status,omitempty"`
	WebClientLoginURL   string `json:"webClientLoginUrl,omitempty"`
	APIURL              string `json:"apiUrl,omitempty"`
	AADTenantID         string `json:"aadTenantId,omitempty"`
	ApplicationInsights string `json:"appInsightsKey,omitempty"`
}
