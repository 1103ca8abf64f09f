package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issue-watcher/pkg/issue"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// tagsPerPage is the page size used when listing tag refs.
	tagsPerPage = 100
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client  *github.Client
	timeout time.Duration
}

// NewGitHubParams holds the GitHub forge configuration.
type NewGitHubParams struct {
	// APIURL is the REST API base, https://api.github.com/ when empty.
	APIURL string
	// Token authenticates requests when set.
	Token string
	// Timeout bounds each request, no bound when zero.
	Timeout time.Duration
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params NewGitHubParams) (*GitHub, error) {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Timeout}
	}

	// Create GitHub client, authenticated when a token is provided
	client := github.NewClient(httpClient)
	if params.Token != "" {
		client = client.WithAuthToken(params.Token)
	}

	// Point the client at a custom API base if configured
	if params.APIURL != "" {
		baseURL, err := url.Parse(params.APIURL)
		if err != nil || !baseURL.IsAbs() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidForgeBaseURL, params.APIURL)
		}
		// go-github requires a trailing slash on the base URL
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	return &GitHub{
		client:  client,
		timeout: params.Timeout,
	}, nil
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// GetIssueState fetches the issue from the GitHub API and returns its state.
func (g *GitHub) GetIssueState(ctx context.Context, ref issue.Reference) (issue.State, error) {
	// Validate issue reference
	if err := ref.Validate(); err != nil {
		return "", err
	}

	// Create context with timeout
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	// Get issue from GitHub API
	gh, resp, err := g.client.Issues.Get(ctx, ref.Owner, ref.Repository, ref.IssueNumber)
	if err != nil {
		return "", g.handleGitHubError(err, resp, fmt.Errorf("%w: %s", ErrIssueNotFound, ref))
	}

	// A missing or unknown state is a malformed response
	state, err := issue.ParseState(gh.GetState())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, ref, err)
	}
	return state, nil
}

// CountReleaseTags lists the repository tag refs and returns how many there are.
func (g *GitHub) CountReleaseTags(ctx context.Context, ref issue.Reference) (issue.ReleaseCount, error) {
	// Validate repository reference
	if err := ref.ValidateRepository(); err != nil {
		return 0, err
	}

	// Create context with timeout shared by all pages
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	// Follow pagination until the last page
	count := 0
	for page := 1; page != 0; {
		u := fmt.Sprintf("repos/%s/%s/git/refs/tags?per_page=%d&page=%d",
			url.PathEscape(ref.Owner), url.PathEscape(ref.Repository), tagsPerPage, page)
		req, err := g.client.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return 0, fmt.Errorf("failed to build tags request: %w", err)
		}

		var refs []*github.Reference
		resp, err := g.client.Do(ctx, req, &refs)
		if err != nil {
			return 0, g.handleGitHubError(err, resp, fmt.Errorf("%w: %s", ErrRepositoryNotFound, ref.FullName()))
		}

		// Each tag ref counts as one release
		count += len(refs)
		page = resp.NextPage
	}

	return issue.ReleaseCount(count), nil
}

func (g *GitHub) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// handleGitHubError maps GitHub API errors to forge errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, notFound error) error {
	// Handle rate limiting errors first
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	// Map HTTP status codes
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return notFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the API token", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: status %d: %w", ErrUnexpectedResponse, resp.StatusCode, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
}
