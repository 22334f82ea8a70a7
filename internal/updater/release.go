package updater

import (
	"fmt"
	"net/http"
	"os"

	"github.com/optihub-labs/optihub/internal/branding"
)

// CheckLatestVersion fetches the latest release from GitHub.
func (u *Updater) CheckLatestVersion() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", u.apiBase, branding.GitHubRepo())

	var release Release
	req := u.client.R().
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", branding.CLIName()+"-updater").
		SetResult(&release)

	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &release, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("release not found")
	case http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	default:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode())
	}
}
