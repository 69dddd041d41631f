package cli

import (
	"context"
	"log/slog"

	"github.com/embassy-tools/embassy-cli/internal/branding"
	"github.com/embassy-tools/embassy-cli/internal/config"
	"github.com/embassy-tools/embassy-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates ready-to-build firmware projects for the Embassy async
embedded framework. Framework versions and the toolchain channel are resolved
from the upstream repository at generation time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		slog.SetDefault(logging.New(logLevel, logFormat, cmd.ErrOrStderr()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "Diagnostic log format: text or json")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(ctx)
}
