package hub

import (
	"fmt"
	"strings"
)

// ManifestError reports a registry load failure: missing file, malformed
// TOML (including duplicate names), or schema violations.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("registry %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// UnknownOptimizerError reports a lookup for a name the registry does not
// declare. Known carries the declared names for the error message.
type UnknownOptimizerError struct {
	Name  string
	Known []string
}

func (e *UnknownOptimizerError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown optimizer %q (registry is empty)", e.Name)
	}
	return fmt.Sprintf("unknown optimizer %q, supported: %s", e.Name, strings.Join(e.Known, ", "))
}

// InstallError reports a package manager failure for one optimizer.
type InstallError struct {
	Name   string
	Source string
	Err    error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing %q from %s: %v", e.Name, e.Source, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// ImportResolutionError reports that an optimizer's module or class could
// not be resolved, typically meaning the providing package has not been
// installed and registered yet.
type ImportResolutionError struct {
	Name   string
	Module string
	Class  string
	Err    error
}

func (e *ImportResolutionError) Error() string {
	return fmt.Sprintf("resolving optimizer %q: %v (was %q installed?)", e.Name, e.Err, e.Name)
}

func (e *ImportResolutionError) Unwrap() error { return e.Err }
