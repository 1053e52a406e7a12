package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	bchttp "github.com/fivetwenty-io/bcapi-client/internal/http"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

func (m *MockTokenManager) RefreshToken(ctx context.Context) error {
	return nil
}

func (m *MockTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2.0/Production/api/v2.0/companies", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			response := map[string]string{"id": "company-id", "name": "CRONUS"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{token: "test-token"}
		client := bchttp.NewClient(server.URL, tokenManager)

		req := &bchttp.Request{
			Method: "GET",
			Path:   "/v2.0/Production/api/v2.0/companies",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "company-id", result["id"])
		assert.Equal(t, "CRONUS", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "$top=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := bchttp.NewClient(server.URL, nil)

		req := &bchttp.Request{
			Method: "GET",
			Path:   "/customers",
			Query:  url.Values{"$top": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Acme", body["displayName"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := bchttp.NewClient(server.URL, nil)

		req := &bchttp.Request{
			Method: "POST",
			Path:   "/customers",
			Body:   map[string]string{"displayName": "Acme"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)

			response := bcapi.ErrorResponse{
				Err: bcapi.APIError{
					Code:    "BadRequest_NotFound",
					Message: "The customer does not exist.",
				},
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := bchttp.NewClient(server.URL, nil)

		req := &bchttp.Request{
			Method: "GET",
			Path:   "/customers(invalid)",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		errResp := &bcapi.ErrorResponse{}
		ok := errors.As(err, &errResp)
		require.True(t, ok)
		assert.Equal(t, 404, errResp.StatusCode)
		assert.Equal(t, "BadRequest_NotFound", errResp.Err.Code)
		assert.Equal(t, "The customer does not exist.", errResp.Err.Message)
	})

	t.Run("auth token failure stops the request", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{err: errors.New("no valid credentials available")}
		client := bchttp.NewClient(server.URL, tokenManager)

		_, err := client.Get(context.Background(), "/customers", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no valid credentials available")
		assert.Equal(t, 0, requests)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := bchttp.NewClient(server.URL, nil)

		req := &bchttp.Request{
			Method: "GET",
			Path:   "/customers",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := bchttp.NewClient(server.URL, nil, bchttp.WithLogger(logger), bchttp.WithDebug(true))

		req := &bchttp.Request{
			Method: "GET",
			Path:   "/customers",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ConcurrencyHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		wantIfMatch bool
		fn          func(*bchttp.Client, context.Context, string) (*bchttp.Response, error)
	}{
		{
			name:        "GET never carries If-Match",
			wantIfMatch: false,
			fn: func(c *bchttp.Client, ctx context.Context, _ string) (*bchttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:        "POST never carries If-Match",
			wantIfMatch: false,
			fn: func(c *bchttp.Client, ctx context.Context, _ string) (*bchttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:        "DELETE never carries If-Match",
			wantIfMatch: false,
			fn: func(c *bchttp.Client, ctx context.Context, _ string) (*bchttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
		{
			name:        "PATCH always carries If-Match",
			wantIfMatch: true,
			fn: func(c *bchttp.Client, ctx context.Context, _ string) (*bchttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:        "Upload always carries If-Match",
			wantIfMatch: true,
			fn: func(c *bchttp.Client, ctx context.Context, filePath string) (*bchttp.Response, error) {
				return c.Upload(ctx, "/test", filePath)
			},
		},
	}

	filePath := filepath.Join(t.TempDir(), "picture.png")
	require.NoError(t, os.WriteFile(filePath, []byte("png-bytes"), 0600))

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				if testCase.wantIfMatch {
					assert.Equal(t, "*", request.Header.Get("If-Match"))
				} else {
					assert.Empty(t, request.Header.Get("If-Match"))
				}

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := bchttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background(), filePath)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "application/octet-stream", request.Header.Get("Content-Type"))
		assert.Equal(t, "*", request.Header.Get("If-Match"))

		body := make([]byte, 9)
		_, _ = request.Body.Read(body)
		assert.Equal(t, "png-bytes", string(body))

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	filePath := filepath.Join(t.TempDir(), "picture.png")
	require.NoError(t, os.WriteFile(filePath, []byte("png-bytes"), 0600))

	client := bchttp.NewClient(server.URL, nil)

	resp, err := client.Upload(context.Background(), "/items(id)/picture/pictureContent", filePath)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestClient_Upload_MissingFile(t *testing.T) {
	t.Parallel()

	client := bchttp.NewClient("http://unused.invalid", nil)

	_, err := client.Upload(context.Background(), "/items(id)/picture/pictureContent", "/does/not/exist.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading upload file")
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*bchttp.Client, context.Context) (*bchttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *bchttp.Client, ctx context.Context) (*bchttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *bchttp.Client, ctx context.Context) (*bchttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *bchttp.Client, ctx context.Context) (*bchttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *bchttp.Client, ctx context.Context) (*bchttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := bchttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}
