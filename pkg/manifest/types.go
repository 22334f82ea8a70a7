package manifest

import (
	"sort"
	"strings"
)

// Entry is one optimizer declaration from the registry manifest.
type Entry struct {
	// Name is the registry table key, the unique lookup identifier.
	Name string `toml:"-" json:"name" yaml:"name"`

	// Source is the location the package manager fetches from: a PyPI
	// package name or a VCS URL (git+https://...).
	Source string `toml:"source" json:"source" yaml:"source"`

	// ModulePath is the importable module containing the class.
	ModulePath string `toml:"module_path" json:"module_path" yaml:"module_path"`

	// ClassName is the symbol within the module to instantiate.
	ClassName string `toml:"class_name" json:"class_name" yaml:"class_name"`

	// Reference is an optional documentation link (paper or blog).
	Reference string `toml:"reference,omitempty" json:"reference,omitempty" yaml:"reference,omitempty"`

	// Installable marks entries that cannot be installed via the package
	// manager yet. Absent means installable.
	Installable *bool `toml:"installable,omitempty" json:"installable,omitempty" yaml:"installable,omitempty"`

	// Requires is an optional version constraint appended to the install
	// requirement (e.g. ">=4.30.0"). Ignored for VCS sources.
	Requires string `toml:"requires,omitempty" json:"requires,omitempty" yaml:"requires,omitempty"`
}

// IsInstallable reports whether the entry can be installed via the
// package manager.
func (e *Entry) IsInstallable() bool {
	return e.Installable == nil || *e.Installable
}

// Requirement returns the string handed to `pip install`. For plain
// package sources the version constraint is appended; VCS URLs carry
// their own pinning syntax and are returned unchanged.
func (e *Entry) Requirement() string {
	if e.Requires == "" || strings.Contains(e.Source, "+") {
		return e.Source
	}
	return e.Source + e.Requires
}

// Registry is the immutable in-memory view of a loaded manifest.
type Registry struct {
	// Path is the file the registry was loaded from, empty when decoded
	// from raw bytes.
	Path string

	index map[string]*Entry
	names []string
}

// Lookup returns the entry for name. The match is case-sensitive and
// exact; no normalization is applied.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.index[name]
	return e, ok
}

// Names returns all declared optimizer names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Entries returns all entries in name-sorted order.
func (r *Registry) Entries() []*Entry {
	entries := make([]*Entry, 0, len(r.names))
	for _, n := range r.names {
		entries = append(entries, r.index[n])
	}
	return entries
}

// Len returns the number of declared optimizers.
func (r *Registry) Len() int {
	return len(r.index)
}

func newRegistry(path string, entries map[string]*Entry) *Registry {
	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return &Registry{Path: path, index: entries, names: names}
}
