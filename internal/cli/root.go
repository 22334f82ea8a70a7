package cli

import (
	"fmt"
	"os"

	"github.com/optihub-labs/optihub/internal/branding"
	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/internal/remote"
	"github.com/optihub-labs/optihub/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages a registry of state-of-the-art machine-learning
optimizers: install any of them with one command, and resolve a registered
name to a ready-to-construct optimizer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip banners for commands that manage their own state.
		name := cmd.Name()
		if name == "update" || name == "init" || name == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())

		// Registry freshness notice, only for the synced home-dir copy.
		path := config.RegistryPath()
		if path == config.HomeRegistryPath() && remote.IsStale(path, remote.DefaultMaxAge) {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(os.Stderr, "Registry is more than 7 days old. Run '%s update'.\n", branding.CLIName())
			}
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
