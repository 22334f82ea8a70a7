package updater

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCheckLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"tag_name": "v1.4.0",
			"published_at": "2026-02-01T12:00:00Z",
			"html_url": "https://example.com/releases/v1.4.0"
		}`))
	}))
	defer srv.Close()

	u := New("1.0.0", WithAPIBase(srv.URL))
	release, err := u.CheckLatestVersion()
	if err != nil {
		t.Fatalf("CheckLatestVersion error: %v", err)
	}
	if release.Version != "v1.4.0" {
		t.Errorf("Version = %q, want v1.4.0", release.Version)
	}
	if release.HTMLURL != "https://example.com/releases/v1.4.0" {
		t.Errorf("HTMLURL = %q", release.HTMLURL)
	}
}

func TestCheckLatestVersion_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u := New("1.0.0", WithAPIBase(srv.URL))
	if _, err := u.CheckLatestVersion(); err == nil {
		t.Fatal("expected error for missing release, got nil")
	}
}

func TestCheckLatestVersion_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	u := New("1.0.0", WithAPIBase(srv.URL))
	_, err := u.CheckLatestVersion()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("error %q does not mention rate limiting", err.Error())
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
		wantErr bool
	}{
		{"newer available", "1.0.0", "1.1.0", true, false},
		{"same version", "1.0.0", "1.0.0", false, false},
		{"current ahead of release", "2.0.0", "1.9.9", false, false},
		{"v prefixes tolerated", "v1.0.0", "v1.0.1", true, false},
		{"mixed prefixes", "1.2.3", "v1.3.0", true, false},
		{"prerelease older than final", "1.0.0", "1.1.0-rc.1", true, false},
		{"bad current", "dev", "1.0.0", false, true},
		{"bad latest", "1.0.0", "latest", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsUpdateAvailable(tt.current, tt.latest)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsUpdateAvailable(%q, %q) = %v, want %v",
					tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// First run: no cache yet.
	cache, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache error: %v", err)
	}
	if cache != nil {
		t.Fatalf("LoadCache = %+v, want nil on first run", cache)
	}

	want := &VersionCache{
		LatestVersion:   "v1.4.0",
		CurrentVersion:  "1.0.0",
		CheckedAt:       time.Now().UTC().Truncate(time.Second),
		UpdateAvailable: true,
	}
	if err := SaveCache(dir, want); err != nil {
		t.Fatalf("SaveCache error: %v", err)
	}

	got, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache error: %v", err)
	}
	if got == nil {
		t.Fatal("LoadCache = nil after SaveCache")
	}
	if got.LatestVersion != want.LatestVersion ||
		got.CurrentVersion != want.CurrentVersion ||
		got.UpdateAvailable != want.UpdateAvailable ||
		!got.CheckedAt.Equal(want.CheckedAt) {
		t.Errorf("LoadCache = %+v, want %+v", got, want)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, time.Hour) {
		t.Error("nil cache reported fresh")
	}

	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, time.Hour) {
		t.Error("just-written cache reported stale")
	}

	old := &VersionCache{CheckedAt: time.Now().Add(-48 * time.Hour)}
	if !IsCacheStale(old, DefaultCacheMaxAge) {
		t.Error("two-day-old cache reported fresh")
	}
}
