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

// NewSalesCommand creates the sales documents command group.
func NewSalesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Manage sales documents",
		Long:  "List and inspect sales quotes and orders in the active company",
	}

	cmd.AddCommand(newSalesQuotesCommand())
	cmd.AddCommand(newSalesOrdersCommand())

	return cmd
}

func newSalesQuotesCommand() *cobra.Command {
	var (
		filter string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "List sales quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			quotes, err := client.SalesQuotes().List(ctx, buildListParams(filter, top))
			if err != nil {
				return fmt.Errorf("failed to list sales quotes: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(quotes)
			case OutputFormatYAML:
				return StandardYAMLRenderer(quotes)
			default:
				if len(quotes) == 0 {
					_, _ = os.Stdout.WriteString("No sales quotes found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Number", "Customer", "Date", "Status", "Total")

				for _, quote := range quotes {
					_ = table.Append(quote.Number, quote.CustomerName, quote.DocumentDate,
						quote.Status, formatAmount(quote.TotalAmountIncludingTax, quote.CurrencyCode))
				}

				_ = table.Render()

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "OData $filter expression")
	cmd.Flags().IntVar(&top, "top", constants.StandardPageSize, "maximum results")

	return cmd
}

func newSalesOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage sales orders",
	}

	cmd.AddCommand(newSalesOrdersListCommand())
	cmd.AddCommand(newSalesOrdersGetCommand())

	return cmd
}

func newSalesOrdersListCommand() *cobra.Command {
	var (
		filter string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sales orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			orders, err := client.SalesOrders().List(ctx, buildListParams(filter, top))
			if err != nil {
				return fmt.Errorf("failed to list sales orders: %w", err)
			}

			return outputSalesOrders(orders)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "OData $filter expression")
	cmd.Flags().IntVar(&top, "top", constants.StandardPageSize, "maximum results")

	return cmd
}

func newSalesOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show sales order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			order, err := client.SalesOrders().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get sales order: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(order)
			case OutputFormatYAML:
				return StandardYAMLRenderer(order)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", order.ID)
				_ = table.Append("Number", order.Number)
				_ = table.Append("Customer", order.CustomerName)
				_ = table.Append("Order Date", order.OrderDate)
				_ = table.Append("Status", order.Status)
				_ = table.Append("Total", formatAmount(order.TotalAmountIncludingTax, order.CurrencyCode))
				_ = table.Render()

				return nil
			}
		},
	}
}

func outputSalesOrders(orders []bcapi.SalesOrder) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(orders)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orders)
	default:
		if len(orders) == 0 {
			_, _ = os.Stdout.WriteString("No sales orders found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "Customer", "Date", "Status", "Total")

		for _, order := range orders {
			_ = table.Append(order.Number, order.CustomerName, order.OrderDate,
				order.Status, formatAmount(order.TotalAmountIncludingTax, order.CurrencyCode))
		}

		_ = table.Render()

		return nil
	}
}
