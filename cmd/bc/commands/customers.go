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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List, create, update, and delete customers in the active company",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		filter string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			customers, err := client.Customers().List(ctx, buildListParams(filter, top))
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return outputCustomers(customers)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "OData $filter expression")
	cmd.Flags().IntVar(&top, "top", constants.StandardPageSize, "maximum results")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show customer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return outputCustomerDetails(customer)
		},
	}
}

//nolint:dupl // create and update differ in the operation, not the flags
func newCustomersCreateCommand() *cobra.Command {
	var request customerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if request.displayName == "" {
				return constants.ErrDisplayNameRequired
			}

			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(ctx, request.toRequest(cmd))
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created customer %s (%s)\n", customer.DisplayName, customer.ID)

			return nil
		},
	}

	request.register(cmd)

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var request customerFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a customer",
		Long:  "Update a customer. Only the flags you pass are sent; other fields are left untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			customer, err := client.Customers().Update(ctx, args[0], request.toRequest(cmd))
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Updated customer %s\n", customer.ID)

			return nil
		},
	}

	request.register(cmd)

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateCompanyClient(ctx)
			if err != nil {
				return err
			}

			err = client.Customers().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted customer %s\n", args[0])

			return nil
		},
	}
}

// customerFlags collects the writable customer fields. toRequest binds only
// the flags that were actually passed, so updates stay partial.
type customerFlags struct {
	displayName string
	email       string
	phoneNumber string
	city        string
	country     string
}

func (f *customerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.displayName, "name", "", "display name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.phoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.city, "city", "", "city")
	cmd.Flags().StringVar(&f.country, "country", "", "country code")
}

func (f *customerFlags) toRequest(cmd *cobra.Command) *bcapi.CustomerRequest {
	request := &bcapi.CustomerRequest{}

	if cmd.Flags().Changed("name") {
		request.DisplayName = &f.displayName
	}

	if cmd.Flags().Changed("email") {
		request.Email = &f.email
	}

	if cmd.Flags().Changed("phone") {
		request.PhoneNumber = &f.phoneNumber
	}

	if cmd.Flags().Changed("city") {
		request.City = &f.city
	}

	if cmd.Flags().Changed("country") {
		request.Country = &f.country
	}

	return request
}

func outputCustomers(customers []bcapi.Customer) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(customers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(customers)
	default:
		if len(customers) == 0 {
			_, _ = os.Stdout.WriteString("No customers found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "Name", "City", "Email", "Balance")

		for _, customer := range customers {
			_ = table.Append(customer.Number, customer.DisplayName, customer.City,
				customer.Email, formatAmount(customer.Balance, customer.CurrencyCode))
		}

		_ = table.Render()

		return nil
	}
}

func outputCustomerDetails(customer *bcapi.Customer) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(customer)
	case OutputFormatYAML:
		return StandardYAMLRenderer(customer)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", customer.ID)
		_ = table.Append("Number", customer.Number)
		_ = table.Append("Name", customer.DisplayName)
		_ = table.Append("Email", customer.Email)
		_ = table.Append("Phone", customer.PhoneNumber)
		_ = table.Append("City", customer.City)
		_ = table.Append("Country", customer.Country)
		_ = table.Append("Balance", formatAmount(customer.Balance, customer.CurrencyCode))

		if customer.LastModified != nil {
			_ = table.Append("Modified", customer.LastModified.Format("2006-01-02 15:04:05"))
		}

		_ = table.Render()

		return nil
	}
}
