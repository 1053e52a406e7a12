package constants

import "errors"

// Configuration errors.
var (
	ErrNoTenantConfigured  = errors.New("no tenant configured, use 'bc login' or set tenant in the config file")
	ErrNoEnvironment       = errors.New("no environment selected, use --environment or 'bc config set environment <name>'")
	ErrNoCompany           = errors.New("no company selected, use --company or 'bc config set company <name>'")
	ErrNotLoggedIn         = errors.New("not logged in, run 'bc login' first")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrSecretFieldReadOnly = errors.New("secret fields cannot be read via the config command")
)

// Validation errors.
var (
	ErrCustomerIDRequired     = errors.New("customer id is required")
	ErrItemIDRequired         = errors.New("item id is required")
	ErrOrderIDRequired        = errors.New("order id is required")
	ErrSubscriptionIDRequired = errors.New("subscription id is required")
	ErrDisplayNameRequired    = errors.New("display name is required (--name)")
	ErrNotificationURLNeeded  = errors.New("notification URL is required (--url)")
	ErrResourcePathNeeded     = errors.New("resource path is required (--resource)")
)
