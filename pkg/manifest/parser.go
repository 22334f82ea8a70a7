package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
)

// document mirrors the top-level shape of registry.toml.
type document struct {
	Optimizers map[string]*Entry `toml:"optimizers"`
}

// Load reads and decodes a registry manifest from path. It fails if the
// file is missing, the TOML is malformed (including duplicate names,
// which the TOML format rejects as key redefinition), the document does
// not satisfy the registry schema, or a version constraint is invalid.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	reg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	reg.Path = path
	return reg, nil
}

// Decode parses raw TOML bytes into a Registry. Used by Load and by the
// registry sync path, which validates upstream content before swapping
// it in.
func Decode(data []byte) (*Registry, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("schema validation failed: %s", result.Summary())
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry TOML: %w", err)
	}

	entries := make(map[string]*Entry, len(doc.Optimizers))
	for name, e := range doc.Optimizers {
		e.Name = name
		if err := checkEntry(e); err != nil {
			return nil, fmt.Errorf("optimizer %q: %w", name, err)
		}
		entries[name] = e
	}

	return newRegistry("", entries), nil
}

// checkEntry enforces the constraints the schema cannot express.
func checkEntry(e *Entry) error {
	if e.IsInstallable() && e.Source == "" {
		return fmt.Errorf("missing install source")
	}
	if e.Requires != "" {
		if _, err := semver.NewConstraint(normalizeConstraint(e.Requires)); err != nil {
			return fmt.Errorf("invalid version constraint %q: %w", e.Requires, err)
		}
	}
	return nil
}

// normalizeConstraint maps the pip `==` pin operator to the semver
// equality form before constraint parsing.
func normalizeConstraint(c string) string {
	return strings.ReplaceAll(c, "==", "=")
}
