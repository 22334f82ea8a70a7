package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/pkg/hub"
	"github.com/optihub-labs/optihub/pkg/manifest"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered optimizers",
	Long:  `List every optimizer declared in the registry.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := hub.New(config.RegistryPath())
	if err != nil {
		return err
	}

	entries := client.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Registry is empty.")
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []*manifest.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODULE\tCLASS\tSOURCE")
	for _, e := range entries {
		source := e.Requirement()
		if !e.IsInstallable() {
			source = "(not installable)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.ModulePath, e.ClassName, source)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []*manifest.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
