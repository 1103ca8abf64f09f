// Package config provides configuration management functionality for the issue watcher.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/lerenn/issue-watcher/pkg/issue"
)

const (
	// DefaultAPIURL is the GitHub REST API base.
	DefaultAPIURL = "https://api.github.com/"
	// DefaultTimeout bounds each request to the issue tracker.
	DefaultTimeout = 10 * time.Second
	// DefaultTokenEnv is the environment variable holding the API token.
	DefaultTokenEnv = "GITHUB_TOKEN"
)

// Config represents the application configuration.
type Config struct {
	APIURL   string        `yaml:"api_url"`
	WebURL   string        `yaml:"web_url"`
	Timeout  time.Duration `yaml:"timeout"`
	TokenEnv string        `yaml:"token_env,omitempty"`
	// Anonymous disables authentication even when TokenEnv is exported.
	Anonymous bool    `yaml:"anonymous,omitempty"`
	Watches   []Watch `yaml:"watches,omitempty"`
}

// Watch is one tracked upstream issue.
type Watch struct {
	// Issue is either "owner/repo#123" or the issue web URL.
	Issue string `yaml:"issue"`
	// State is the expected state, "open" when empty.
	State string `yaml:"state,omitempty"`
	// Message tells the reader what to do once the expectation breaks.
	Message string `yaml:"message,omitempty"`
	// MaxReleases, when set, also bounds the number of release tags.
	MaxReleases *int `yaml:"max_releases,omitempty"`
}

// Reference parses the watched issue reference.
func (w Watch) Reference() (issue.Reference, error) {
	return issue.ParseReference(w.Issue)
}

// ExpectedState returns the expected issue state.
func (w Watch) ExpectedState() (issue.State, error) {
	if w.State == "" {
		return issue.Open, nil
	}
	return issue.ParseState(w.State)
}

// Validate validates the watch entry.
func (w Watch) Validate() error {
	if _, err := w.Reference(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWatch, err)
	}
	if _, err := w.ExpectedState(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidWatch, w.Issue, err)
	}
	if w.MaxReleases != nil && *w.MaxReleases < 0 {
		return fmt.Errorf("%w %s: max_releases cannot be negative", ErrInvalidWatch, w.Issue)
	}
	return nil
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		APIURL:   DefaultAPIURL,
		WebURL:   issue.DefaultWebURL,
		Timeout:  DefaultTimeout,
		TokenEnv: DefaultTokenEnv,
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}
	if c.WebURL == "" {
		return ErrWebURLEmpty
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	for i, w := range c.Watches {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("watches[%d]: %w", i, err)
		}
	}
	return nil
}

// Token returns the API token from the configured environment variable, if any.
func (c Config) Token() string {
	if c.Anonymous || c.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.TokenEnv)
}

// withDefaults fills unset values from Default.
func (c Config) withDefaults() Config {
	def := Default()
	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.WebURL == "" {
		c.WebURL = def.WebURL
	}
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	if c.TokenEnv == "" {
		c.TokenEnv = def.TokenEnv
	}
	return c
}
