package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/bcapi-client/internal/constants"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// NewSubscriptionsCommand creates the webhook subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs", "webhooks"},
		Short:   "Manage webhook subscriptions",
		Long:    "List, create, renew, and delete webhook subscriptions in the active environment",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsRenewCommand())
	cmd.AddCommand(newSubscriptionsDeleteCommand())

	return cmd
}

func createEnvironmentClient() (bcapi.Client, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	if client.Environment() == "" {
		return nil, constants.ErrNoEnvironment
	}

	return client, nil
}

func newSubscriptionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhook subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createEnvironmentClient()
			if err != nil {
				return err
			}

			subscriptions, err := client.Subscriptions().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return outputSubscriptions(subscriptions)
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		notificationURL string
		resource        string
		clientState     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			if notificationURL == "" {
				return constants.ErrNotificationURLNeeded
			}

			if resource == "" {
				return constants.ErrResourcePathNeeded
			}

			client, err := createEnvironmentClient()
			if err != nil {
				return err
			}

			request := &bcapi.SubscriptionRequest{
				NotificationURL: &notificationURL,
				Resource:        &resource,
			}
			if clientState != "" {
				request.ClientState = &clientState
			}

			subscription, err := client.Subscriptions().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created subscription %s\n", subscription.SubscriptionID)

			return nil
		},
	}

	cmd.Flags().StringVar(&notificationURL, "url", "", "notification endpoint URL")
	cmd.Flags().StringVar(&resource, "resource", "", "resource path to watch")
	cmd.Flags().StringVar(&clientState, "client-state", "", "shared secret echoed in notifications")

	return cmd
}

func newSubscriptionsRenewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "renew <id>",
		Short: "Renew a webhook subscription",
		Long:  "Extend a subscription's expiration window before it lapses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createEnvironmentClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Renew(context.Background(), args[0], &bcapi.SubscriptionRequest{})
			if err != nil {
				return fmt.Errorf("failed to renew subscription: %w", err)
			}

			expiry := NotAvailable
			if subscription.ExpirationDateTime != nil {
				expiry = subscription.ExpirationDateTime.Format("2006-01-02 15:04:05")
			}

			fmt.Fprintf(os.Stdout, "Renewed subscription %s (expires %s)\n",
				subscription.SubscriptionID, expiry)

			return nil
		},
	}
}

func newSubscriptionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a webhook subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createEnvironmentClient()
			if err != nil {
				return err
			}

			err = client.Subscriptions().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete subscription: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted subscription %s\n", args[0])

			return nil
		},
	}
}

func outputSubscriptions(subscriptions []bcapi.Subscription) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(subscriptions)
	case OutputFormatYAML:
		return StandardYAMLRenderer(subscriptions)
	default:
		if len(subscriptions) == 0 {
			_, _ = os.Stdout.WriteString("No subscriptions found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Resource", "Notification URL", "Expires")

		for _, subscription := range subscriptions {
			expiry := NotAvailable
			if subscription.ExpirationDateTime != nil {
				expiry = subscription.ExpirationDateTime.Format("2006-01-02 15:04")
			}

			_ = table.Append(subscription.SubscriptionID, subscription.Resource,
				subscription.NotificationURL, expiry)
		}

		_ = table.Render()

		return nil
	}
}
