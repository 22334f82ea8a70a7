package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/pkg/hub"
	"github.com/optihub-labs/optihub/pkg/manifest"
	"github.com/spf13/cobra"
)

var (
	searchInstallableOnly bool
	searchJSON            bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the registry",
	Long: `Search registered optimizers by name, module path, or reference link.

The query is a case-insensitive substring match. Note that install and the
optimizer lookup itself stay case-sensitive; search is only for discovery.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchInstallableOnly, "installable-only", false, "Hide entries that cannot be installed yet")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	client, err := hub.New(config.RegistryPath())
	if err != nil {
		return err
	}

	var matches []*manifest.Entry
	for _, e := range client.Entries() {
		if searchInstallableOnly && !e.IsInstallable() {
			continue
		}
		if !matchesQuery(e, query) {
			continue
		}
		matches = append(matches, e)
	}

	if len(matches) == 0 {
		msg := "No optimizers found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if searchJSON {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODULE\tREFERENCE")
	for _, e := range matches {
		ref := e.Reference
		if ref == "" {
			ref = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.ModulePath, ref)
	}
	return w.Flush()
}

// matchesQuery reports whether the entry matches the query as a
// case-insensitive substring of its name, module path, or reference.
func matchesQuery(e *manifest.Entry, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{e.Name, e.ModulePath, e.Reference} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
