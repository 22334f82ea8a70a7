package hub

import (
	"context"
	"fmt"

	"github.com/optihub-labs/optihub/internal/pyenv"
)

// Runner invokes the package manager for one install requirement. The
// production runner shells out to `python -m pip install`; tests inject
// fakes.
type Runner interface {
	Install(ctx context.Context, requirement string) error
}

// defaultRunner returns the pip runner. Interpreter discovery is deferred
// until the first Install call, so clients that never install do not need
// Python on PATH.
func defaultRunner() Runner {
	return &pyenv.PipRunner{}
}

// Skip records an entry that Install deliberately did not process.
type Skip struct {
	Name   string
	Reason string
}

// Failure records a per-name install failure. Err is an
// *UnknownOptimizerError or an *InstallError.
type Failure struct {
	Name string
	Err  error
}

// InstallReport summarizes one Install batch. Names appear in exactly
// one of the three lists, in the order they were requested.
type InstallReport struct {
	Installed []string
	Skipped   []Skip
	Failed    []Failure
}

// Ok reports whether every requested name was installed or skipped.
func (r *InstallReport) Ok() bool {
	return len(r.Failed) == 0
}

// Install processes the requested names independently and in order. For
// each name it looks up the entry and invokes the package manager with
// the entry's install requirement. Unknown names and package manager
// failures are recorded in the report and do not abort the batch;
// entries marked non-installable are skipped with a notice. Installing
// an already-installed package succeeds again (the package manager is
// idempotent).
//
// The context is passed to each package manager invocation; no timeout
// is imposed beyond what the caller sets.
func (c *Client) Install(ctx context.Context, names ...string) *InstallReport {
	report := &InstallReport{}

	for _, name := range names {
		entry, ok := c.reg.Lookup(name)
		if !ok {
			err := &UnknownOptimizerError{Name: name, Known: c.reg.Names()}
			report.Failed = append(report.Failed, Failure{Name: name, Err: err})
			fmt.Fprintf(c.out, "  ✗ %s: %v\n", name, err)
			continue
		}

		if !entry.IsInstallable() {
			reason := "not installable via the package manager yet (see registry)"
			report.Skipped = append(report.Skipped, Skip{Name: name, Reason: reason})
			fmt.Fprintf(c.out, "  - %s: skipped, %s\n", name, reason)
			continue
		}

		requirement := entry.Requirement()
		fmt.Fprintf(c.out, "  … %s: installing from %s\n", name, requirement)

		if err := c.runner.Install(ctx, requirement); err != nil {
			ierr := &InstallError{Name: name, Source: requirement, Err: err}
			report.Failed = append(report.Failed, Failure{Name: name, Err: ierr})
			fmt.Fprintf(c.out, "  ✗ %s: %v\n", name, err)
			continue
		}

		report.Installed = append(report.Installed, name)
		fmt.Fprintf(c.out, "  ✓ %s\n", name)
	}

	return report
}
