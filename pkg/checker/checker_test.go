//go:build unit

package checker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lerenn/issue-watcher/pkg/config"
	"github.com/lerenn/issue-watcher/pkg/forge"
	"github.com/lerenn/issue-watcher/pkg/forge/mocks"
	"github.com/lerenn/issue-watcher/pkg/issue"
	"github.com/lerenn/issue-watcher/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const safety119URL = "https://github.com/pyupio/safety/issues/119"

var safety119 = issue.NewReference("pyupio", "safety", 119)

// recordingT records assertion failures instead of failing the running test.
type recordingT struct {
	failures []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func newTestChecker(t *testing.T) (*Checker, *mocks.MockForge) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockForge := mocks.NewMockForge(ctrl)
	return NewChecker(NewCheckerParams{Forge: mockForge}), mockForge
}

func TestChecker_AssertIssueIsOpen_Open(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Open, nil)

	rt := &recordingT{}
	assert.True(t, checker.AssertIssueIsOpen(rt, safety119, "Check if safety can be enabled on Windows."))
	assert.Empty(t, rt.failures)
}

func TestChecker_AssertIssueIsOpen_Closed(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Closed, nil)

	rt := &recordingT{}
	assert.False(t, checker.AssertIssueIsOpen(rt, safety119, "Check if safety can be enabled on Windows."))
	require.Len(t, rt.failures, 1)
	assert.Contains(t, rt.failures[0], safety119URL)
	assert.Contains(t, rt.failures[0], "is closed, expected open")
	assert.Contains(t, rt.failures[0], "Check if safety can be enabled on Windows.")
}

func TestChecker_AssertIssueIsClosed(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Closed, nil)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Open, nil)

	rt := &recordingT{}
	assert.True(t, checker.AssertIssueIsClosed(rt, safety119, ""))
	assert.False(t, checker.AssertIssueIsClosed(rt, safety119, ""))
	require.Len(t, rt.failures, 1)
	assert.Contains(t, rt.failures[0], "is open, expected closed")
}

func TestChecker_CheckIssueIsOpen_Failures(t *testing.T) {
	tests := []struct {
		name        string
		state       issue.State
		forgeErr    error
		expectedErr error
	}{
		{name: "closed", state: issue.Closed, expectedErr: ErrStateMismatch},
		{name: "transport error", forgeErr: errors.New("connection refused"), expectedErr: ErrTrackerQuery},
		{name: "not found", forgeErr: forge.ErrIssueNotFound, expectedErr: forge.ErrIssueNotFound},
		{name: "malformed response", forgeErr: fmt.Errorf("%w: %w", forge.ErrUnexpectedResponse, issue.ErrUnknownState), expectedErr: issue.ErrUnknownState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, mockForge := newTestChecker(t)
			mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(tt.state, tt.forgeErr)

			err := checker.CheckIssueIsOpen(context.Background(), safety119)
			assert.ErrorIs(t, err, ErrCheckFailed)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Contains(t, err.Error(), safety119URL)
		})
	}
}

func TestChecker_CheckIssueIsOpen_InvalidReference(t *testing.T) {
	// No forge call expected
	checker, _ := newTestChecker(t)

	err := checker.CheckIssueIsOpen(context.Background(), issue.NewReference("pyupio", "safety", 0))
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.ErrorIs(t, err, issue.ErrInvalidIssueReference)
	assert.Contains(t, err.Error(), "pyupio/safety")
}

func TestChecker_CheckIssueIsOpen_Idempotent(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Closed, nil).Times(2)

	first := checker.CheckIssueIsOpen(context.Background(), safety119)
	second := checker.CheckIssueIsOpen(context.Background(), safety119)
	require.Error(t, first)
	assert.Equal(t, first.Error(), second.Error())
}

func TestChecker_CheckReleaseCountAtMost(t *testing.T) {
	tests := []struct {
		name     string
		count    issue.ReleaseCount
		maxCount int
		wantErr  bool
	}{
		{name: "below", count: 2, maxCount: 3},
		{name: "exactly max", count: 3, maxCount: 3},
		{name: "one more than max", count: 4, maxCount: 3, wantErr: true},
		{name: "zero allowed, none published", count: 0, maxCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, mockForge := newTestChecker(t)
			mockForge.EXPECT().CountReleaseTags(gomock.Any(), safety119).Return(tt.count, nil)

			err := checker.CheckReleaseCountAtMost(context.Background(), safety119, tt.maxCount)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrCheckFailed)
			assert.ErrorIs(t, err, ErrTooManyReleases)
			assert.Contains(t, err.Error(), safety119URL)
			assert.Contains(t, err.Error(), "https://github.com/pyupio/safety has 4 release tags, more than 3")
		})
	}
}

func TestChecker_CheckReleaseCountAtMost_Errors(t *testing.T) {
	checker, mockForge := newTestChecker(t)

	err := checker.CheckReleaseCountAtMost(context.Background(), safety119, -1)
	assert.ErrorIs(t, err, ErrInvalidReference)

	err = checker.CheckReleaseCountAtMost(context.Background(), issue.NewReference("", "safety", 0), 1)
	assert.ErrorIs(t, err, ErrInvalidReference)

	mockForge.EXPECT().CountReleaseTags(gomock.Any(), gomock.Any()).Return(issue.ReleaseCount(0), forge.ErrRepositoryNotFound)
	err = checker.CheckReleaseCountAtMost(context.Background(), issue.NewReference("pyupio", "safety", 0), 1)
	assert.ErrorIs(t, err, ErrTrackerQuery)
	assert.ErrorIs(t, err, forge.ErrRepositoryNotFound)
	assert.Contains(t, err.Error(), "https://github.com/pyupio/safety")
}

func TestChecker_AssertReleaseCountAtMost(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	mockForge.EXPECT().CountReleaseTags(gomock.Any(), safety119).Return(issue.ReleaseCount(5), nil)
	mockForge.EXPECT().CountReleaseTags(gomock.Any(), safety119).Return(issue.ReleaseCount(6), nil)

	rt := &recordingT{}
	assert.True(t, checker.AssertReleaseCountAtMost(rt, safety119, 5, "a fix may have shipped"))
	assert.False(t, checker.AssertReleaseCountAtMost(rt, safety119, 5, "a fix may have shipped"))
	require.Len(t, rt.failures, 1)
	assert.Contains(t, rt.failures[0], "a fix may have shipped")
}

func TestRepositoryChecker(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	repo := checker.Repository("pyupio", "safety")

	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Open, nil)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Closed, nil)
	mockForge.EXPECT().CountReleaseTags(gomock.Any(), issue.NewReference("pyupio", "safety", 0)).Return(issue.ReleaseCount(1), nil)

	rt := &recordingT{}
	assert.True(t, repo.IsOpen(rt, 119, "Check if safety can be enabled on Windows."))
	assert.True(t, repo.IsClosed(rt, 119, ""))
	assert.True(t, repo.ReleasesAtMost(rt, 1, ""))
	assert.Empty(t, rt.failures)
}

func TestChecker_LogsChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockForge := mocks.NewMockForge(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	checker := NewChecker(NewCheckerParams{Forge: mockForge, Logger: mockLogger})

	mockLogger.EXPECT().Logf("Checking that %s is %s", safety119URL, issue.Open)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Open, nil)

	assert.NoError(t, checker.CheckIssueIsOpen(context.Background(), safety119))
}

func intPtr(v int) *int { return &v }

func TestChecker_RunWatches(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	other := issue.NewReference("owner", "repo", 7)

	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Open, nil)
	mockForge.EXPECT().CountReleaseTags(gomock.Any(), safety119).Return(issue.ReleaseCount(3), nil)
	mockForge.EXPECT().GetIssueState(gomock.Any(), other).Return(issue.Open, nil)

	results := checker.RunWatches(context.Background(), []config.Watch{
		{Issue: "pyupio/safety#119", MaxReleases: intPtr(2)},
		{Issue: "https://github.com/owner/repo/issues/7", State: "closed"},
		{Issue: "not-a-reference"},
	})

	require.Len(t, results, 3)
	assert.False(t, results[0].Passed())
	assert.ErrorIs(t, results[0].Err, ErrTooManyReleases)
	assert.Equal(t, safety119, results[0].Reference)

	assert.False(t, results[1].Passed())
	assert.ErrorIs(t, results[1].Err, ErrStateMismatch)

	assert.False(t, results[2].Passed())
	assert.ErrorIs(t, results[2].Err, ErrInvalidReference)
}

func TestChecker_RunWatches_SkipsReleasesOnStateFailure(t *testing.T) {
	checker, mockForge := newTestChecker(t)
	mockForge.EXPECT().GetIssueState(gomock.Any(), safety119).Return(issue.Closed, nil)

	results := checker.RunWatches(context.Background(), []config.Watch{
		{Issue: "pyupio/safety#119", MaxReleases: intPtr(2)},
	})
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrStateMismatch)
}

func TestNew_AgainstFakeGitHub(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/pyupio/safety/issues/119":
			_, _ = w.Write([]byte(`{"number":119,"state":"closed"}`))
		case r.URL.Path == "/repos/pyupio/safety/issues/120":
			_, _ = w.Write([]byte(`{"number":120}`))
		case r.URL.Path == "/repos/pyupio/safety/issues/121":
			w.WriteHeader(http.StatusServiceUnavailable)
		case strings.HasSuffix(r.URL.Path, "/git/refs/tags"):
			_, _ = w.Write([]byte(`[{"ref":"refs/tags/1.0"},{"ref":"refs/tags/1.1"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.APIURL = server.URL
	cfg.Anonymous = true
	cfg.Timeout = 2 * time.Second

	checker, err := New(cfg, nil)
	require.NoError(t, err)

	rt := &recordingT{}
	assert.False(t, checker.Repository("pyupio", "safety").IsOpen(rt, 119, "Check if safety can be enabled on Windows."))
	assert.False(t, checker.Repository("pyupio", "safety").IsOpen(rt, 120, ""))
	assert.False(t, checker.Repository("pyupio", "safety").IsOpen(rt, 121, ""))
	assert.True(t, checker.Repository("pyupio", "safety").ReleasesAtMost(rt, 2, ""))
	assert.False(t, checker.Repository("pyupio", "safety").ReleasesAtMost(rt, 1, ""))

	require.Len(t, rt.failures, 4)
	assert.Contains(t, rt.failures[0], safety119URL)
	assert.Contains(t, rt.failures[1], "https://github.com/pyupio/safety/issues/120")
	assert.Contains(t, rt.failures[2], "https://github.com/pyupio/safety/issues/121")
	assert.Contains(t, rt.failures[3], "https://github.com/pyupio/safety")
}
