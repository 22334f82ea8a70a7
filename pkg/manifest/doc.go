// Package manifest loads and validates the registry.toml file that maps
// optimizer names to install sources, module paths, and class names. The
// decoded registry is immutable; name lookup is a case-sensitive exact
// match on the declared table key.
package manifest
