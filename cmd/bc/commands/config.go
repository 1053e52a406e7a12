package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/bcapi-client/internal/constants"
)

// Keys the config command may read and write. Credentials are set through
// login and never echoed back.
var (
	settableKeys = []string{"api", "tenant", "environment", "company", "output"}
	secretKeys   = []string{"client_id", "client_secret", "access_token"}
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify persistent CLI settings like the active environment and company",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := make(map[string]string, len(settableKeys))
			for _, key := range settableKeys {
				settings[key] = viper.GetString(key)
			}

			for _, key := range secretKeys {
				if viper.GetString(key) != "" {
					settings[key] = Masked
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(settings)
			case OutputFormatYAML:
				return StandardYAMLRenderer(settings)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				keys := append(slices.Clone(settableKeys), secretKeys...)
				for _, key := range keys {
					if value, ok := settings[key]; ok {
						_ = table.Append(key, value)
					}
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if slices.Contains(secretKeys, key) {
				return fmt.Errorf("%q: %w", key, constants.ErrSecretFieldReadOnly)
			}

			if !slices.Contains(settableKeys, key) {
				return fmt.Errorf("%q: %w", key, constants.ErrUnknownConfigKey)
			}

			fmt.Fprintln(os.Stdout, viper.GetString(key))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if !slices.Contains(settableKeys, key) {
				return fmt.Errorf("%q: %w", key, constants.ErrUnknownConfigKey)
			}

			viper.Set(key, value)

			return saveConfig()
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if !slices.Contains(settableKeys, key) {
				return fmt.Errorf("%q: %w", key, constants.ErrUnknownConfigKey)
			}

			viper.Set(key, "")

			return saveConfig()
		},
	}
}
