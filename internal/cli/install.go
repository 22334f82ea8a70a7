package cli

import (
	"fmt"
	"os"

	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/internal/pyenv"
	"github.com/optihub-labs/optihub/pkg/hub"
	"github.com/spf13/cobra"
)

var (
	installAll     bool
	installVerbose bool
)

var installCmd = &cobra.Command{
	Use:   "install <name>...",
	Short: "Install optimizers via pip",
	Long: `Install the named optimizers using the registry's install sources.
Each name is processed independently: a failing install is reported and the
rest of the batch continues.`,
	Args: cobra.ArbitraryArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installAll, "all", false, "Install every installable optimizer in the registry")
	installCmd.Flags().BoolVarP(&installVerbose, "verbose", "v", false, "Stream pip output")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if !installAll && len(args) == 0 {
		return fmt.Errorf("specify at least one optimizer name or use --all")
	}

	runner := &pyenv.PipRunner{}
	if installVerbose {
		runner.Stdout = cmd.OutOrStdout()
		runner.Stderr = os.Stderr
	}

	client, err := hub.New(config.RegistryPath(),
		hub.WithRunner(runner),
		hub.WithOutput(cmd.OutOrStdout()),
	)
	if err != nil {
		return err
	}

	names := args
	if installAll {
		names = client.Names()
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Installing...")
	report := client.Install(cmd.Context(), names...)

	// Print summary.
	fmt.Fprintln(cmd.OutOrStdout())
	if n := len(report.Installed); n > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %d optimizer(s).", n)
		if len(report.Skipped) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " %d skipped.", len(report.Skipped))
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if !report.Ok() {
		failed := make([]string, 0, len(report.Failed))
		for _, f := range report.Failed {
			failed = append(failed, f.Name)
		}
		return fmt.Errorf("install failed for: %v", failed)
	}
	return nil
}
