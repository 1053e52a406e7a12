package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/bcapi-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials     = errors.New("no valid credentials available")
	ErrStaticTokenOnly   = errors.New("static token cannot be refreshed")
	ErrEmptyTokenInReply = errors.New("token endpoint returned an empty access token")
)

// OAuth2Config configures the client-credentials exchange against the
// Entra ID v2.0 token endpoint. The grant type is fixed: there is no
// fallback to any other flow.
type OAuth2Config struct {
	// TokenURL is the full token endpoint URL.
	TokenURL string

	// ClientID and ClientSecret are the app registration credentials.
	ClientID     string
	ClientSecret string

	// Scopes defaults to the fixed Business Central application scope.
	Scopes []string

	// AccessToken seeds the store with a pre-acquired token.
	AccessToken string

	// HTTPClient overrides the transport used for the exchange.
	HTTPClient *http.Client
}

// OAuth2TokenManager exchanges client credentials for bearer tokens and
// caches the result until it expires. Expired tokens are re-exchanged on
// the next request; there is no proactive background refresh.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
	mutex      sync.Mutex
}

// NewOAuth2TokenManager creates a token manager from config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	if len(config.Scopes) == 0 {
		config.Scopes = []string{constants.TokenScope}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   "bearer",
		})
	}

	return manager
}

// NewEntraTokenManager creates a token manager for a tenant's Entra ID
// v2.0 token endpoint.
func NewEntraTokenManager(tenantID, clientID, clientSecret string) *OAuth2TokenManager {
	return NewOAuth2TokenManager(&OAuth2Config{
		TokenURL:     TokenURLForTenant(tenantID),
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// TokenURLForTenant returns the Entra ID v2.0 token endpoint for a tenant.
func TokenURLForTenant(tenantID string) string {
	return constants.LoginEndpoint + "/" + tenantID + "/oauth2/v2.0/token"
}

// GetToken returns a valid access token, exchanging credentials if needed.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// RefreshToken forces a fresh exchange, discarding any cached token.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually seeds the token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// tokenError is the error body the identity provider returns.
type tokenError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, ErrNoCredentials
	}

	// Entra ID expects the credentials in the form body, not basic auth.
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)
	form.Set("scope", strings.Join(m.config.Scopes, " "))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var authErr tokenError

		if json.Unmarshal(body, &authErr) == nil && authErr.Error != "" {
			return nil, fmt.Errorf("token request failed with status %d: %s: %s",
				resp.StatusCode, authErr.Error, authErr.ErrorDescription)
		}

		return nil, fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyTokenInReply
	}

	lifetime := constants.DefaultTokenLifetime
	if token.ExpiresIn > 0 {
		lifetime = time.Duration(token.ExpiresIn) * time.Second
	}

	token.ExpiresAt = time.Now().Add(lifetime)

	return &token, nil
}
