// Package cli defines the Cobra command tree for the optihub CLI. Each
// file in this package registers one top-level command (install, list,
// info, etc.) with the root command. Command implementations delegate to
// pkg/hub and pkg/manifest for business logic and only handle flag
// parsing, I/O formatting, and user interaction.
package cli
