package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/optihub-labs/optihub/internal/config"
	"github.com/optihub-labs/optihub/internal/pyenv"
	"github.com/optihub-labs/optihub/pkg/manifest"
	"github.com/spf13/cobra"
)

var (
	checkPython   bool
	checkRegistry bool
	checkRefs     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkPython, "check-python", false, "Verify Python and pip availability")
	doctorCmd.Flags().BoolVar(&checkRegistry, "check-registry", false, "Load and validate the configured registry")
	doctorCmd.Flags().BoolVar(&checkRefs, "check-refs", false, "Probe reference links of all entries over HTTP")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the Opti Hub environment",
	Long:  `Run diagnostic checks on the Python environment and the registry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkPython || checkRegistry || checkRefs

		// If no specific flag, run the offline checks.
		if !anyFlag {
			runPythonCheck(cmd)
			return runRegistryCheck(cmd)
		}

		if checkPython {
			runPythonCheck(cmd)
		}
		if checkRegistry {
			if err := runRegistryCheck(cmd); err != nil {
				return err
			}
		}
		if checkRefs {
			if err := runRefsCheck(cmd); err != nil {
				return err
			}
		}
		return nil
	},
}

func runPythonCheck(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Python check:")

	interp, err := pyenv.Find()
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %v\n", err)
		return
	}
	fmt.Fprintf(out, "  [ OK ] interpreter at %s\n", interp.Bin)

	if version, err := interp.Version(cmd.Context()); err == nil {
		fmt.Fprintf(out, "  [ OK ] Python %s\n", version)
	} else {
		fmt.Fprintf(out, "  [WARN] version probe failed: %v\n", err)
	}

	if interp.HasPip(cmd.Context()) {
		fmt.Fprintf(out, "  [ OK ] pip is usable\n")
	} else {
		fmt.Fprintf(out, "  [MISS] pip not usable via %s -m pip\n", interp.Bin)
	}
}

func runRegistryCheck(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := config.RegistryPath()
	fmt.Fprintln(out, "Registry check:")

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found (run `optihub update` to fetch it)\n", path)
		return fmt.Errorf("registry %s not found", path)
	}

	reg, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] %s loads with %d optimizer(s)\n", path, reg.Len())
	return nil
}

// runRefsCheck probes the reference link of every entry. Broken links
// mean a paper or repo moved; the registry entry should be refreshed.
func runRefsCheck(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Reference link check:")

	reg, err := manifest.Load(config.RegistryPath())
	if err != nil {
		return err
	}

	client := resty.New().SetTimeout(15 * time.Second)
	broken := 0

	for _, e := range reg.Entries() {
		if e.Reference == "" {
			continue
		}

		resp, err := client.R().SetContext(cmd.Context()).Head(e.Reference)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", e.Name, err)
			broken++
			continue
		}
		// Some hosts reject HEAD; retry with GET before declaring it broken.
		if resp.StatusCode() == http.StatusMethodNotAllowed {
			resp, err = client.R().SetContext(cmd.Context()).Get(e.Reference)
			if err != nil {
				fmt.Fprintf(out, "  [FAIL] %s: %v\n", e.Name, err)
				broken++
				continue
			}
		}
		if resp.IsError() {
			fmt.Fprintf(out, "  [FAIL] %s: %s returned HTTP %d\n", e.Name, e.Reference, resp.StatusCode())
			broken++
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s\n", e.Name)
	}

	if broken > 0 {
		return fmt.Errorf("%d reference link(s) are broken", broken)
	}
	return nil
}
