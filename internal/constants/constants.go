package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations like token exchange.
	ShortHTTPTimeout = 10 * time.Second
)

// Token lifecycle.
const (
	// TokenExpiryBuffer treats a token as expired this far before its
	// actual expiry so an exchange mid-request never races the deadline.
	TokenExpiryBuffer = 30 * time.Second

	// DefaultTokenLifetime is what the identity provider grants when it
	// does not report expires_in.
	DefaultTokenLifetime = time.Hour
)

// Service endpoints.
const (
	// DefaultAPIEndpoint is the Business Central service root.
	DefaultAPIEndpoint = "https://api.businesscentral.dynamics.com"

	// LoginEndpoint is the Entra ID authority base URL.
	LoginEndpoint = "https://login.microsoftonline.com"

	// TokenScope is the fixed application scope for the target API.
	TokenScope = "https://api.businesscentral.dynamics.com/.default"
)

// Paging.
const (
	// StandardPageSize is the common $top value for list commands.
	StandardPageSize = 50
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusCreated represents a successful create.
	HTTPStatusCreated = 201

	// HTTPStatusNoContent represents a successful delete.
	HTTPStatusNoContent = 204

	// HTTPStatusBadRequest represents a client error.
	HTTPStatusBadRequest = 400

	// HTTPStatusUnauthorized represents an authentication failure.
	HTTPStatusUnauthorized = 401

	// HTTPStatusNotFound represents a missing resource.
	HTTPStatusNotFound = 404
)
