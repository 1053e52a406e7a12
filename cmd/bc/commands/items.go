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

// NewItemsCommand creates the items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage items",
		Long:    "List and inspect inventory items in the active company",
	}

	cmd.AddCommand(newItemsListCommand())
	cmd.AddCommand(newItemsGetCommand())

	return cmd
}

func newItemsListCommand() *cobra.Command {
	var (
		filter string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			items, err := client.Items().List(ctx, buildListParams(filter, top))
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			return outputItems(items)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "OData $filter expression")
	cmd.Flags().IntVar(&top, "top", constants.StandardPageSize, "maximum results")

	return cmd
}

func newItemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			item, err := client.Items().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get item: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(item)
			case OutputFormatYAML:
				return StandardYAMLRenderer(item)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", item.ID)
				_ = table.Append("Number", item.Number)
				_ = table.Append("Name", item.DisplayName)
				_ = table.Append("Type", item.Type)
				_ = table.Append("Inventory", fmt.Sprintf("%.0f", item.Inventory))
				_ = table.Append("Unit Price", fmt.Sprintf("%.2f", item.UnitPrice))
				_ = table.Append("Base Unit", item.BaseUnitOfMeasure)
				_ = table.Render()

				return nil
			}
		},
	}
}

func outputItems(items []bcapi.Item) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(items)
	case OutputFormatYAML:
		return StandardYAMLRenderer(items)
	default:
		if len(items) == 0 {
			_, _ = os.Stdout.WriteString("No items found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "Name", "Type", "Inventory", "Unit Price")

		for _, item := range items {
			_ = table.Append(item.Number, item.DisplayName, item.Type,
				fmt.Sprintf("%.0f", item.Inventory), fmt.Sprintf("%.2f", item.UnitPrice))
		}

		_ = table.Render()

		return nil
	}
}
