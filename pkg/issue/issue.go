// Package issue provides data structures and error types for tracked forge issues.
package issue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultWebURL is the web base used to build human-readable issue links.
const DefaultWebURL = "https://github.com"

var (
	issueURLRegexp  = regexp.MustCompile(`^https?://[^/]+/([^/]+)/([^/]+)/issues/(\d+)/?$`)
	ownerRepoRegexp = regexp.MustCompile(`^([^/#\s]+)/([^/#\s]+)$`)
)

// State is the lifecycle state of an issue as reported by the tracker.
type State string

const (
	// Open is the state of an unresolved issue.
	Open State = "open"
	// Closed is the state of a resolved issue.
	Closed State = "closed"
)

// ParseState converts the tracker's raw state value.
// Anything else than "open" or "closed", including an empty value, is an error.
func ParseState(raw string) (State, error) {
	switch State(raw) {
	case Open, Closed:
		return State(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownState, raw)
	}
}

// ReleaseCount is the number of release tags published by a repository.
type ReleaseCount int

// Reference identifies one tracked issue.
type Reference struct {
	Owner       string `yaml:"owner"`
	Repository  string `yaml:"repository"`
	IssueNumber int    `yaml:"number,omitempty"`
}

// NewReference creates a reference to an issue.
func NewReference(owner, repository string, issueNumber int) Reference {
	return Reference{
		Owner:       owner,
		Repository:  repository,
		IssueNumber: issueNumber,
	}
}

// ValidateRepository checks that owner and repository are set.
func (r Reference) ValidateRepository() error {
	if strings.TrimSpace(r.Owner) == "" || strings.ContainsAny(r.Owner, "/# ") {
		return fmt.Errorf("%w: owner %q", ErrInvalidRepository, r.Owner)
	}
	if strings.TrimSpace(r.Repository) == "" || strings.ContainsAny(r.Repository, "/# ") {
		return fmt.Errorf("%w: repository %q", ErrInvalidRepository, r.Repository)
	}
	return nil
}

// Validate checks that the reference points to a single issue.
func (r Reference) Validate() error {
	if err := r.ValidateRepository(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIssueReference, err)
	}
	if r.IssueNumber <= 0 {
		return fmt.Errorf("%w: issue number must be positive, got %d", ErrInvalidIssueReference, r.IssueNumber)
	}
	return nil
}

// FullName returns "owner/repository".
func (r Reference) FullName() string {
	return r.Owner + "/" + r.Repository
}

// String returns "owner/repository#number", or "owner/repository" without a number.
func (r Reference) String() string {
	if r.IssueNumber <= 0 {
		return r.FullName()
	}
	return fmt.Sprintf("%s#%d", r.FullName(), r.IssueNumber)
}

// RepositoryURL returns the repository web page under webBase.
func (r Reference) RepositoryURL(webBase string) string {
	if webBase == "" {
		webBase = DefaultWebURL
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(webBase, "/"), r.Owner, r.Repository)
}

// URL returns the issue web page under webBase.
func (r Reference) URL(webBase string) string {
	return fmt.Sprintf("%s/issues/%d", r.RepositoryURL(webBase), r.IssueNumber)
}

// ParseReference parses "owner/repo#123" and issue web URLs.
func ParseReference(ref string) (Reference, error) {
	ref = strings.TrimSpace(ref)

	// 1. Issue URL: https://github.com/owner/repo/issues/123
	if matches := issueURLRegexp.FindStringSubmatch(ref); matches != nil {
		return buildReference(matches[1], matches[2], matches[3])
	}

	// 2. owner/repo#123
	ownerRepo, number, found := strings.Cut(ref, "#")
	if !found {
		return Reference{}, fmt.Errorf("%w: %s", ErrInvalidIssueReference, ref)
	}
	matches := ownerRepoRegexp.FindStringSubmatch(ownerRepo)
	if matches == nil {
		return Reference{}, fmt.Errorf("%w: invalid owner/repo in %s", ErrInvalidIssueReference, ref)
	}
	return buildReference(matches[1], matches[2], number)
}

// ParseRepository parses "owner/repo".
func ParseRepository(ref string) (Reference, error) {
	matches := ownerRepoRegexp.FindStringSubmatch(strings.TrimSpace(ref))
	if matches == nil {
		return Reference{}, fmt.Errorf("%w: %s", ErrInvalidRepository, ref)
	}
	return NewReference(matches[1], matches[2], 0), nil
}

func buildReference(owner, repo, number string) (Reference, error) {
	issueNumber, err := strconv.Atoi(number)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: invalid issue number %q", ErrInvalidIssueReference, number)
	}

	ref := NewReference(owner, repo, issueNumber)
	if err := ref.Validate(); err != nil {
		return Reference{}, err
	}
	return ref, nil
}
