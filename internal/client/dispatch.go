package client

import (
	"context"
	"net/url"

	bchttp "github.com/fivetwenty-io/bcapi-client/internal/http"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// dispatcher binds an addressing mode (and, for extension APIs, the
// publisher/group/version triple) to the client. Resource clients hold one
// and never deal with scope or base paths themselves.
type dispatcher struct {
	client *Client
	mode   bcapi.Mode
	ext    bcapi.ExtensionAPI
}

// dispatch validates preconditions in order (token, then environment, then
// company, then extension parameters) and only then sends the request.
// Each unmet precondition fails with its own sentinel so the
// caller knows which setup step is missing.
func (d dispatcher) dispatch(ctx context.Context, req *bchttp.Request) (*bchttp.Response, error) {
	if d.client.tokenManager == nil {
		return nil, bcapi.ErrNotAuthenticated
	}

	snap := d.client.scope.snapshot()

	basePath, err := buildBasePath(d.mode, snap, d.ext)
	if err != nil {
		return nil, err
	}

	req.Path = basePath + req.Path

	if d.client.config.Debug && d.client.config.Logger != nil {
		d.client.config.Logger.Debug("dispatching request", map[string]interface{}{
			"environment": snap.Environment,
			"mode":        string(d.mode),
		})
	}

	return d.client.httpClient.Do(ctx, req)
}

func (d dispatcher) get(ctx context.Context, path string, query url.Values) (*bchttp.Response, error) {
	return d.dispatch(ctx, &bchttp.Request{Method: "GET", Path: path, Query: query})
}

func (d dispatcher) post(ctx context.Context, path string, body interface{}) (*bchttp.Response, error) {
	return d.dispatch(ctx, &bchttp.Request{Method: "POST", Path: path, Body: body})
}

func (d dispatcher) patch(ctx context.Context, path string, body interface{}) (*bchttp.Response, error) {
	return d.dispatch(ctx, &bchttp.Request{Method: "PATCH", Path: path, Body: body})
}

func (d dispatcher) delete(ctx context.Context, path string) (*bchttp.Response, error) {
	return d.dispatch(ctx, &bchttp.Request{Method: "DELETE", Path: path})
}

func (d dispatcher) upload(ctx context.Context, path, filePath string) (*bchttp.Response, error) {
	return d.dispatch(ctx, &bchttp.Request{Method: "PATCH", Path: path, FilePath: filePath})
}

// queryValues renders optional query params.
func queryValues(params *bcapi.QueryParams) url.Values {
	if params == nil {
		return nil
	}

	return params.ToValues()
}
