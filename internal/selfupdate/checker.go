// Package selfupdate checks GitHub releases for a newer build and swaps
// the running binary in place.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	releaseOwner = "arjunvk"
	releaseRepo  = "levelcheck"

	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker talks to the release host.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// Option customizes a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithAPIBaseURL overrides the release API host. Used by tests.
func WithAPIBaseURL(base string) Option {
	return func(c *Checker) { c.apiBaseURL = base }
}

// WithDownloadBaseURL overrides the asset download host. Used by tests.
func WithDownloadBaseURL(base string) Option {
	return func(c *Checker) { c.downloadBaseURL = base }
}

// WithExecPath overrides how the running binary's path is resolved.
func WithExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker for the project's releases.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           releaseOwner,
		repo:            releaseRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput is the current build's version.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
}

// Check queries the latest release and compares versions.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from release API", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release has no tag name")
	}

	latest := normalizeVersion(release.TagName)
	current := normalizeVersion(input.Version)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("invalid release tag %q", release.TagName)
	}

	return &CheckResult{
		UpdateAvailable: !semver.IsValid(current) || semver.Compare(latest, current) > 0,
		LatestVersion:   release.TagName,
	}, nil
}

// normalizeVersion adds the "v" prefix semver.Compare requires.
func normalizeVersion(v string) string {
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
