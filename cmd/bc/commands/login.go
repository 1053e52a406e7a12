package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/bcapi-client/internal/constants"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
	"github.com/fivetwenty-io/bcapi-client/pkg/bcclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		tenantID     string
		clientID     string
		clientSecret string
		accessToken  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Business Central",
		Long: `Authenticate against Business Central with Entra ID client credentials
and store them in the CLI configuration for later commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tenantID == "" {
				tenantID = viper.GetString("tenant")
			}

			if accessToken == "" {
				var err error

				tenantID, clientID, clientSecret, err = promptMissingCredentials(tenantID, clientID, clientSecret)
				if err != nil {
					return err
				}
			}

			config := &bcapi.Config{
				APIEndpoint:   viper.GetString("api"),
				TenantID:      tenantID,
				ClientID:      clientID,
				ClientSecret:  clientSecret,
				AccessToken:   accessToken,
				SkipTLSVerify: viper.GetBool("skip_ssl_validation"),
			}

			client, err := bcclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Exchange the credentials now so a typo fails here, not on
			// the first real command.
			ctx := context.Background()

			err = client.Authenticate(ctx)
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			environments, err := client.Environments().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list environments: %w", err)
			}

			persistLogin(tenantID, clientID, clientSecret, accessToken)

			err = saveConfig()
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Logged in to tenant %s (%d environments available)\n",
				tenantID, len(environments))

			return nil
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant-id", "", "Entra ID tenant")
	cmd.Flags().StringVar(&clientID, "client-id", "", "app registration client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "app registration client secret")
	cmd.Flags().StringVar(&accessToken, "token", "", "pre-acquired access token")

	return cmd
}

func promptMissingCredentials(tenantID, clientID, clientSecret string) (string, string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	if tenantID == "" {
		fmt.Print("Tenant id: ")

		line, _ := reader.ReadString('\n')
		tenantID = strings.TrimSpace(line)
	}

	if clientID == "" {
		fmt.Print("Client id: ")

		line, _ := reader.ReadString('\n')
		clientID = strings.TrimSpace(line)
	}

	if clientSecret == "" {
		fmt.Print("Client secret: ")

		byteSecret, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", "", "", fmt.Errorf("failed to read client secret: %w", err)
		}

		clientSecret = string(byteSecret)

		fmt.Println()
	}

	return tenantID, clientID, clientSecret, nil
}

func persistLogin(tenantID, clientID, clientSecret, accessToken string) {
	viper.Set("tenant", tenantID)
	viper.Set("client_id", clientID)
	viper.Set("client_secret", clientSecret)
	viper.Set("access_token", accessToken)
}

func saveConfig() error {
	err := viper.WriteConfig()
	if err == nil {
		return nil
	}

	// First write: no config file exists yet.
	home, homeErr := os.UserHomeDir()
	if homeErr != nil {
		return fmt.Errorf("finding home directory: %w", homeErr)
	}

	path := home + "/.bc/config.yml"

	err = viper.WriteConfigAs(path)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return os.Chmod(path, constants.ConfigFilePerm)
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of Business Central",
		Long:  "Remove stored credentials from the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			persistLogin("", "", "", "")

			err := saveConfig()
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Logged out")

			return nil
		},
	}
}
