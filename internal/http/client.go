// Package http wraps the standard HTTP client with the header assembly,
// error surfacing, and debug logging the Business Central API requires.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/fivetwenty-io/bcapi-client/internal/auth"
	"github.com/fivetwenty-io/bcapi-client/internal/constants"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// Logger interface for HTTP debug logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is marshaled to JSON when non-nil.
	Body interface{}

	// FilePath streams a file as the request body instead of JSON. Used
	// for binary uploads; mutually exclusive with Body.
	FilePath string

	// Headers are additional headers, overriding the defaults on clash.
	Headers map[string]string
}

// Response is the outcome of a request: status plus the raw body. Typed
// resource clients parse the body themselves, so every verb gets the same
// contract.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests against a base URL.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokenManager auth.TokenManager
	logger       Logger
	debug        bool
	userAgent    string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new API HTTP client.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: constants.DefaultHTTPTimeout},
		tokenManager: tokenManager,
		userAgent:    "bcapi-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Any non-2xx status is returned as a
// *bcapi.ErrorResponse carrying the upstream code and message verbatim,
// alongside the response itself.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := c.requestBody(req)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req, contentType)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"body":   debugBody(req),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    fullURL,
			"body":   string(respBody),
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, bcapi.ParseErrorResponse(respBody, resp.StatusCode)
	}

	return resp, nil
}

// requestBody resolves the request body and its content type. Exactly one
// of Body and FilePath may be set.
func (c *Client) requestBody(req *Request) (io.Reader, string, error) {
	if req.FilePath != "" {
		data, err := os.ReadFile(req.FilePath)
		if err != nil {
			return nil, "", fmt.Errorf("reading upload file: %w", err)
		}

		return bytes.NewReader(data), "application/octet-stream", nil
	}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	}

	return nil, "application/json", nil
}

func (c *Client) setHeaders(ctx context.Context, httpReq *http.Request, req *Request, contentType string) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("User-Agent", c.userAgent)

	// Mutations need a concurrency precondition or the service rejects
	// them. The wildcard form trades lost-update protection for not
	// having to track per-entity etags.
	if httpReq.Method == http.MethodPatch || req.FilePath != "" {
		httpReq.Header.Set("If-Match", "*")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting auth token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

// debugBody renders the body for logs without touching the reader.
func debugBody(req *Request) string {
	if req.FilePath != "" {
		return "<file: " + req.FilePath + ">"
	}

	if req.Body == nil {
		return ""
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return "<unmarshalable>"
	}

	return string(data)
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch executes a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Upload executes a PATCH request streaming a file as the body.
func (c *Client) Upload(ctx context.Context, path, filePath string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, FilePath: filePath})
}
