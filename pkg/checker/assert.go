package checker

import (
	"context"

	"github.com/lerenn/issue-watcher/pkg/issue"
	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// AssertIssueIsOpen fails t unless the referenced issue is open.
// The failure carries the issue link and message.
func (c *Checker) AssertIssueIsOpen(t assert.TestingT, ref issue.Reference, message string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, c.CheckIssueIsOpen(context.Background(), ref), message)
}

// AssertIssueIsClosed fails t unless the referenced issue is closed.
func (c *Checker) AssertIssueIsClosed(t assert.TestingT, ref issue.Reference, message string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, c.CheckIssueIsClosed(context.Background(), ref), message)
}

// AssertReleaseCountAtMost fails t when the repository has more than maxCount release tags.
func (c *Checker) AssertReleaseCountAtMost(t assert.TestingT, ref issue.Reference, maxCount int, message string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, c.CheckReleaseCountAtMost(context.Background(), ref, maxCount), message)
}

func report(t assert.TestingT, err error, message string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err == nil {
		return true
	}
	if message == "" {
		return assert.Fail(t, err.Error())
	}
	return assert.Fail(t, err.Error(), message)
}

// RepositoryChecker runs assertions against the issues of one repository.
type RepositoryChecker struct {
	checker    *Checker
	owner      string
	repository string
}

// Repository scopes the checker to owner/repository.
func (c *Checker) Repository(owner, repository string) RepositoryChecker {
	return RepositoryChecker{
		checker:    c,
		owner:      owner,
		repository: repository,
	}
}

// IsOpen fails t unless issue number is open.
func (r RepositoryChecker) IsOpen(t assert.TestingT, number int, message string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return r.checker.AssertIssueIsOpen(t, issue.NewReference(r.owner, r.repository, number), message)
}

// IsClosed fails t unless issue number is closed.
func (r RepositoryChecker) IsClosed(t assert.TestingT, number int, message string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return r.checker.AssertIssueIsClosed(t, issue.NewReference(r.owner, r.repository, number), message)
}

// ReleasesAtMost fails t when the repository has more than maxCount release tags.
func (r RepositoryChecker) ReleasesAtMost(t assert.TestingT, maxCount int, message string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return r.checker.AssertReleaseCountAtMost(t, issue.NewReference(r.owner, r.repository, 0), maxCount, message)
}
