package cli

import (
	"fmt"

	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/internal/remote"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh the registry from its upstream URL",
	Long: `Download the latest shared registry.toml from the configured upstream
URL into ~/.optihub/. The download is validated before it replaces the
local copy.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	url := config.RegistryURL()
	target := config.HomeRegistryPath()

	fmt.Fprintf(cmd.OutOrStdout(), "Fetching registry from %s\n", url)
	if err := remote.Fetch(url, target); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Registry updated at %s\n", target)
	return nil
}
