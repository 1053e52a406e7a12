package auth

import (
	"context"
	"sync"
	"time"

	"github.com/fivetwenty-io/bcapi-client/internal/constants"
)

// Token represents an OAuth2 access token as returned by the Entra ID
// token endpoint.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	Scope       string    `json:"scope,omitempty"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token can still be used. A token inside the
// expiry buffer counts as expired so an exchange never races the deadline.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpiryBuffer).Before(t.ExpiresAt)
}

// TokenStore holds the current token behind a lock so a client can be
// shared across goroutines.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear drops the stored token.
func (s *TokenStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = nil
}

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, exchanging credentials if
	// the cached one is absent or expired.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a fresh exchange now.
	RefreshToken(ctx context.Context) error

	// SetToken manually seeds the token.
	SetToken(token string, expiresAt time.Time)
}
