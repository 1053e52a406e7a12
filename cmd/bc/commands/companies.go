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

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
		Long:    "List companies in the active environment and select the active one",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesUseCommand())

	return cmd
}

func newCompaniesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long:  "List all companies in the active environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if client.Environment() == "" {
				return constants.ErrNoEnvironment
			}

			companies, err := client.Companies().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list companies: %w", err)
			}

			return outputCompanies(companies)
		},
	}
}

func newCompaniesUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id-or-name>",
		Short: "Select the active company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if client.Environment() == "" {
				return constants.ErrNoEnvironment
			}

			err = client.SetCompany(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to select company: %w", err)
			}

			companyID, companyName := client.Company()

			viper.Set("company", companyID)

			err = saveConfig()
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Now using company %s (%s)\n", companyName, companyID)

			return nil
		},
	}
}

func outputCompanies(companies []bcapi.Company) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(companies)
	case OutputFormatYAML:
		return StandardYAMLRenderer(companies)
	default:
		if len(companies) == 0 {
			_, _ = os.Stdout.WriteString("No companies found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Display Name")

		for _, company := range companies {
			_ = table.Append(company.ID, company.Name, company.DisplayName)
		}

		_ = table.Render()

		return nil
	}
}
