package cli

import (
	"fmt"

	"github.com/embassy-tools/embassy-cli/internal/branding"
	"github.com/embassy-tools/embassy-cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write %s configuration stored at ~/%s/config.yaml.

Keys:
  %-16s upstream repository (owner/repo)
  %-16s branch descriptor files are read from
  %-16s GitHub REST API base URL
  %-16s raw file base URL
  %-16s token for authenticated requests (falls back to GITHUB_TOKEN)
  %-16s transport timeout, e.g. 60s (0 disables it)
  %-16s formatter command run in new projects (empty disables it)

Every key can also be set through the environment, e.g. %s.`,
		branding.DisplayName(), branding.HomeDir(),
		config.KeyUpstreamRepo, config.KeyUpstreamBranch, config.KeyAPIBase, config.KeyRawBase,
		config.KeyGitHubToken, config.KeyHTTPTimeout, config.KeyFormatter,
		branding.EnvVar(config.KeyGitHubToken)),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
