// Package updater checks GitHub releases for newer versions of the CLI
// and prints a non-blocking update banner at startup, backed by an
// on-disk cache so the network is hit at most once per day.
package updater
