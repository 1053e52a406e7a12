package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// NewEnvironmentsCommand creates the environments command group.
func NewEnvironmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"envs", "env"},
		Short:   "Manage environments",
		Long:    "List Business Central environments and select the active one",
	}

	cmd.AddCommand(newEnvironmentsListCommand())
	cmd.AddCommand(newEnvironmentsGetCommand())
	cmd.AddCommand(newEnvironmentsUseCommand())

	return cmd
}

func newEnvironmentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List environments",
		Long:  "List all environments in the tenant through the admin center API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			environments, err := client.Environments().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list environments: %w", err)
			}

			return outputEnvironments(environments)
		},
	}
}

func newEnvironmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show environment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			environment, err := client.Environments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get environment: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(environment)
			case OutputFormatYAML:
				return StandardYAMLRenderer(environment)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Name", environment.Name)
				_ = table.Append("Type", environment.Type)
				_ = table.Append("Country", environment.CountryCode)
				_ = table.Append("Status", environment.Status)
				_ = table.Append("Application Version", environment.ApplicationVersion)
				_ = table.Append("Platform Version", environment.PlatformVersion)
				_ = table.Render()

				return nil
			}
		},
	}
}

func newEnvironmentsUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Select the active environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Validate before persisting: a typo here would break every
			// later command.
			environment, err := client.Environments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get environment: %w", err)
			}

			viper.Set("environment", environment.Name)

			err = saveConfig()
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Now using environment %s\n", environment.Name)

			return nil
		},
	}
}

func outputEnvironments(environments []bcapi.Environment) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(environments)
	case OutputFormatYAML:
		return StandardYAMLRenderer(environments)
	default:
		if len(environments) == 0 {
			_, _ = os.Stdout.WriteString("No environments found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Type", "Country", "Status", "Version")

		for _, environment := range environments {
			_ = table.Append(environment.Name, environment.Type,
				environment.CountryCode, environment.Status, environment.ApplicationVersion)
		}

		_ = table.Render()

		return nil
	}
}
