// Package remote fetches the shared registry manifest from its upstream
// URL. Downloads are validated before replacing the local file, the swap
// is atomic, and a freshness marker tracks when the registry was last
// refreshed.
package remote

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/optihub-labs/optihub/pkg/manifest"
)

const (
	// freshnessFile is the name of the timestamp marker file, written
	// next to the registry.
	freshnessFile = ".registry-updated"

	// DefaultMaxAge is the default staleness threshold (7 days).
	DefaultMaxAge = 7 * 24 * time.Hour

	// tmpSuffix is appended to the target file during atomic replace.
	tmpSuffix = ".tmp"

	fetchTimeout = 30 * time.Second
)

// Fetch downloads the registry from url and installs it at targetPath.
// The downloaded content must decode and validate as a registry manifest
// before it replaces any existing file. The write is atomic: content
// goes to a .tmp file first and is renamed on success.
func Fetch(url, targetPath string) error {
	client := resty.New().SetTimeout(fetchTimeout)

	resp, err := client.R().Get(url)
	if err != nil {
		return fmt.Errorf("fetching registry from %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetching registry from %s: HTTP %d", url, resp.StatusCode())
	}

	body := resp.Body()
	if _, err := manifest.Decode(body); err != nil {
		return fmt.Errorf("upstream registry is not usable: %w", err)
	}

	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating registry directory %s: %w", dir, err)
	}

	tmpPath := targetPath + tmpSuffix
	if err := os.WriteFile(tmpPath, body, 0644); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	if err := os.Rename(tmpPath, targetPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing registry: %w", err)
	}

	if err := MarkUpdated(dir); err != nil {
		// Non-fatal: the registry itself is in place.
		return nil
	}
	return nil
}

// MarkUpdated writes the freshness marker in dir with the current time.
func MarkUpdated(dir string) error {
	path := filepath.Join(dir, freshnessFile)
	stamp := strconv.FormatInt(time.Now().Unix(), 10)
	return os.WriteFile(path, []byte(stamp+"\n"), 0644)
}

// IsStale reports whether the registry at registryPath is older than
// maxAge. A missing marker falls back to the registry file's mtime; a
// missing registry counts as stale.
func IsStale(registryPath string, maxAge time.Duration) bool {
	marker := filepath.Join(filepath.Dir(registryPath), freshnessFile)

	if data, err := os.ReadFile(marker); err == nil {
		sec, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
		if err == nil {
			return time.Since(time.Unix(sec, 0)) > maxAge
		}
	}

	info, err := os.Stat(registryPath)
	if err != nil {
		return true
	}
	return time.Since(info.ModTime()) > maxAge
}
