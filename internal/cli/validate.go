package cli

import (
	"fmt"

	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/pkg/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a registry file against the schema",
	Long: `Validate a registry.toml against the embedded JSON schema. Without an
argument the configured registry is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := config.RegistryPath()
	if len(args) > 0 {
		path = args[0]
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registry validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %v\n", err)
		return fmt.Errorf("registry validation failed: %w", err)
	}

	if result.Valid {
		// Load fully to catch what the schema cannot express.
		reg, err := manifest.Load(path)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %v\n", err)
			return fmt.Errorf("registry validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  [ OK ] Valid registry with %d optimizer(s)\n", reg.Len())
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("registry %s has %d validation issue(s)", path, len(result.Issues))
}
