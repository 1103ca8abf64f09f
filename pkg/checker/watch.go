package checker

import (
	"context"
	"fmt"

	"github.com/lerenn/issue-watcher/pkg/config"
	"github.com/lerenn/issue-watcher/pkg/issue"
)

// Result is the outcome of one configured watch.
type Result struct {
	Watch     config.Watch
	Reference issue.Reference
	Err       error
}

// Passed reports whether every check of the watch succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// RunWatches evaluates the watches one after the other.
// The release check of a watch only runs once its state check passed.
func (c *Checker) RunWatches(ctx context.Context, watches []config.Watch) []Result {
	results := make([]Result, 0, len(watches))
	for _, w := range watches {
		results = append(results, c.runWatch(ctx, w))
	}
	return results
}

func (c *Checker) runWatch(ctx context.Context, w config.Watch) Result {
	result := Result{Watch: w}

	ref, err := w.Reference()
	if err != nil {
		result.Err = fmt.Errorf("%w: %w: %w", ErrCheckFailed, ErrInvalidReference, err)
		return result
	}
	result.Reference = ref

	expected, err := w.ExpectedState()
	if err != nil {
		result.Err = fmt.Errorf("%w: %w: %s: %w", ErrCheckFailed, ErrInvalidReference, ref.URL(c.webURL), err)
		return result
	}

	if err := c.CheckIssueState(ctx, ref, expected); err != nil {
		result.Err = err
		return result
	}

	if w.MaxReleases != nil {
		result.Err = c.CheckReleaseCountAtMost(ctx, ref, *w.MaxReleases)
	}
	return result
}
