package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// SubscriptionsClient implements bcapi.SubscriptionsClient. Subscriptions
// are registered at environment scope; the service keys them with quoted
// string ids rather than GUID parentheses.
type SubscriptionsClient struct {
	d dispatcher
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(c *Client) *SubscriptionsClient {
	return &SubscriptionsClient{
		d: dispatcher{client: c, mode: bcapi.ModeEnvironment},
	}
}

func (c *SubscriptionsClient) subscriptionPath(id string) string {
	return "/subscriptions('" + id + "')"
}

// List implements bcapi.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, params *bcapi.QueryParams) ([]bcapi.Subscription, error) {
	resp, err := c.d.get(ctx, "/subscriptions", queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	var list bcapi.ListResponse[bcapi.Subscription]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription list response: %w", err)
	}

	return list.Value, nil
}

// Get implements bcapi.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string) (*bcapi.Subscription, error) {
	resp, err := c.d.get(ctx, c.subscriptionPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	var subscription bcapi.Subscription

	err = json.Unmarshal(resp.Body, &subscription)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription response: %w", err)
	}

	return &subscription, nil
}

// Create implements bcapi.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *bcapi.SubscriptionRequest) (*bcapi.Subscription, error) {
	resp, err := c.d.post(ctx, "/subscriptions", request)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	var subscription bcapi.Subscription

	err = json.Unmarshal(resp.Body, &subscription)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription response: %w", err)
	}

	return &subscription, nil
}

// Renew implements bcapi.SubscriptionsClient.Renew. Renewal is a partial
// update of the existing subscription, which resets its expiration window.
func (c *SubscriptionsClient) Renew(ctx context.Context, id string, request *bcapi.SubscriptionRequest) (*bcapi.Subscription, error) {
	resp, err := c.d.patch(ctx, c.subscriptionPath(id), request)
	if err != nil {
		return nil, fmt.Errorf("renewing subscription: %w", err)
	}

	var subscription bcapi.Subscription

	err = json.Unmarshal(resp.Body, &subscription)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription response: %w", err)
	}

	return &subscription, nil
}

// Delete implements bcapi.SubscriptionsClient.Delete.
func (c *SubscriptionsClient) Delete(ctx context.Context, id string) error {
	_, err := c.d.delete(ctx, c.subscriptionPath(id))
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	return nil
}
