package cli

import (
	"fmt"
	"os"

	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/internal/remote"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up ~/.optihub and fetch the registry",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := config.EnsureDir(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", config.Dir())

	target := config.HomeRegistryPath()
	if _, err := os.Stat(target); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Registry already present at %s\n", target)
		return nil
	}

	url := config.RegistryURL()
	fmt.Fprintf(cmd.OutOrStdout(), "Fetching registry from %s\n", url)
	if err := remote.Fetch(url, target); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Registry installed at %s\n", target)
	return nil
}
