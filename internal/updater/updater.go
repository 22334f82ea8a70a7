package updater

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Release represents a GitHub release.
type Release struct {
	Version   string    `json:"tag_name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Updater provides release checks against the GitHub API.
type Updater struct {
	currentVersion string
	client         *resty.Client
	apiBase        string
}

// Option configures an Updater.
type Option func(*Updater)

// WithClient sets a custom resty client (useful for testing).
func WithClient(c *resty.Client) Option {
	return func(u *Updater) {
		u.client = c
	}
}

// WithAPIBase overrides the GitHub API base URL (useful for testing).
func WithAPIBase(base string) Option {
	return func(u *Updater) {
		u.apiBase = base
	}
}

// New creates an Updater with the given current version and options.
func New(currentVersion string, opts ...Option) *Updater {
	u := &Updater{
		currentVersion: currentVersion,
		apiBase:        "https://api.github.com",
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.client == nil {
		u.client = resty.New().SetTimeout(10 * time.Second)
	}
	return u
}

// CurrentVersion returns the version this updater was created with.
func (u *Updater) CurrentVersion() string {
	return u.currentVersion
}
