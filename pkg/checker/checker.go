// Package checker asserts that tracked upstream issues are still in the expected state.
//
// Transport errors, unexpected HTTP statuses and malformed responses are not told
// apart from a genuine mismatch: they all fail the check.
package checker

import (
	"context"
	"fmt"

	"github.com/lerenn/issue-watcher/pkg/config"
	"github.com/lerenn/issue-watcher/pkg/forge"
	"github.com/lerenn/issue-watcher/pkg/issue"
	"github.com/lerenn/issue-watcher/pkg/logger"
)

// Checker verifies issue states and release counts against an issue tracker.
// It keeps no state between calls.
type Checker struct {
	forge  forge.Forge
	webURL string
	logger logger.Logger
}

// NewCheckerParams holds the checker dependencies.
type NewCheckerParams struct {
	Forge forge.Forge
	// WebURL is the base of the human-readable links put in failure messages.
	WebURL string
	Logger logger.Logger
}

// NewChecker creates a new Checker.
func NewChecker(params NewCheckerParams) *Checker {
	if params.WebURL == "" {
		params.WebURL = issue.DefaultWebURL
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	return &Checker{
		forge:  params.Forge,
		webURL: params.WebURL,
		logger: params.Logger,
	}
}

// New creates a Checker querying GitHub as configured by cfg.
func New(cfg config.Config, log logger.Logger) (*Checker, error) {
	if log == nil {
		log = logger.NewNoopLogger()
	}

	manager, err := forge.NewManager(log, cfg)
	if err != nil {
		return nil, err
	}
	github, err := manager.GetForge(forge.GitHubName)
	if err != nil {
		return nil, err
	}

	return NewChecker(NewCheckerParams{
		Forge:  github,
		WebURL: cfg.WebURL,
		Logger: log,
	}), nil
}

// Default creates a Checker against the public GitHub API.
// The token is read from GITHUB_TOKEN when set.
func Default() (*Checker, error) {
	return New(config.Default(), nil)
}

// CheckIssueState returns nil when the referenced issue is in the expected state.
func (c *Checker) CheckIssueState(ctx context.Context, ref issue.Reference, expected issue.State) error {
	if err := ref.Validate(); err != nil {
		return fmt.Errorf("%w: %w: %q: %w", ErrCheckFailed, ErrInvalidReference, ref.String(), err)
	}
	url := ref.URL(c.webURL)

	c.logger.Logf("Checking that %s is %s", url, expected)
	state, err := c.forge.GetIssueState(ctx, ref)
	if err != nil {
		return fmt.Errorf("%w: %w: %s: %w", ErrCheckFailed, ErrTrackerQuery, url, err)
	}

	if state != expected {
		return fmt.Errorf("%w: %w: %s is %s, expected %s", ErrCheckFailed, ErrStateMismatch, url, state, expected)
	}
	return nil
}

// CheckIssueIsOpen returns nil when the referenced issue is open.
func (c *Checker) CheckIssueIsOpen(ctx context.Context, ref issue.Reference) error {
	return c.CheckIssueState(ctx, ref, issue.Open)
}

// CheckIssueIsClosed returns nil when the referenced issue is closed.
func (c *Checker) CheckIssueIsClosed(ctx context.Context, ref issue.Reference) error {
	return c.CheckIssueState(ctx, ref, issue.Closed)
}

// CheckReleaseCountAtMost returns nil when the repository has at most maxCount release tags.
// The issue number of ref is optional and only used to link the tracked issue.
func (c *Checker) CheckReleaseCountAtMost(ctx context.Context, ref issue.Reference, maxCount int) error {
	if err := ref.ValidateRepository(); err != nil {
		return fmt.Errorf("%w: %w: %q: %w", ErrCheckFailed, ErrInvalidReference, ref.String(), err)
	}
	url := c.subjectURL(ref)
	if maxCount < 0 {
		return fmt.Errorf("%w: %w: %s: max release count cannot be negative, got %d",
			ErrCheckFailed, ErrInvalidReference, url, maxCount)
	}

	c.logger.Logf("Checking that %s has at most %d release tags", ref.FullName(), maxCount)
	count, err := c.forge.CountReleaseTags(ctx, ref)
	if err != nil {
		return fmt.Errorf("%w: %w: %s: %w", ErrCheckFailed, ErrTrackerQuery, url, err)
	}

	if int(count) > maxCount {
		return fmt.Errorf("%w: %w: %s has %d release tags, more than %d; check whether %s is still relevant",
			ErrCheckFailed, ErrTooManyReleases, ref.RepositoryURL(c.webURL), count, maxCount, url)
	}
	return nil
}

// subjectURL links the issue when ref has one, the repository otherwise.
func (c *Checker) subjectURL(ref issue.Reference) string {
	if ref.IssueNumber > 0 {
		return ref.URL(c.webURL)
	}
	return ref.RepositoryURL(c.webURL)
}
