package cli

import (
	"encoding/json"
	"fmt"

	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/pkg/hub"
	"github.com/optihub-labs/optihub/pkg/manifest"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var infoOutput string

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a registry entry in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", "text", "Output format (text, yaml, json)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := hub.New(config.RegistryPath())
	if err != nil {
		return err
	}

	entry, err := client.Lookup(args[0])
	if err != nil {
		return err
	}

	switch infoOutput {
	case "json":
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(entry)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	case "text":
		printInfoText(cmd, entry)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml, or json)", infoOutput)
	}
}

func printInfoText(cmd *cobra.Command, entry *manifest.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:       %s\n", entry.Name)
	fmt.Fprintf(out, "Module:     %s\n", entry.ModulePath)
	fmt.Fprintf(out, "Class:      %s\n", entry.ClassName)
	if entry.IsInstallable() {
		fmt.Fprintf(out, "Source:     %s\n", entry.Requirement())
	} else {
		fmt.Fprintf(out, "Source:     %s (not installable yet)\n", entry.Source)
	}
	if entry.Reference != "" {
		fmt.Fprintf(out, "Reference:  %s\n", entry.Reference)
	}
}
