//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/issue-watcher/pkg/checker"
	"github.com/lerenn/issue-watcher/pkg/config"
	"github.com/lerenn/issue-watcher/pkg/fs"
	"github.com/lerenn/issue-watcher/pkg/logger"
	"github.com/stretchr/testify/require"
)

// testShEnv points to the test.sh script checked by the rcfile tests.
const testShEnv = "IW_TEST_SH"

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	Config     config.Config
	Checker    *checker.Checker
}

// setupTestEnvironment writes a default configuration and builds a checker
// querying the live GitHub API.
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests query the GitHub API")
	}

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".iw", "config.yaml")

	manager := config.NewManager(fs.NewFS(), configPath)
	require.NoError(t, manager.Init(false))

	cfg, err := manager.GetConfig()
	require.NoError(t, err)

	c, err := checker.New(cfg, logger.NewNoopLogger())
	require.NoError(t, err)

	return &TestSetup{
		TempDir:    tempDir,
		ConfigPath: configPath,
		Config:     cfg,
		Checker:    c,
	}
}

// testShPath returns the test.sh path or skips the test.
func testShPath(t *testing.T) string {
	t.Helper()

	path := os.Getenv(testShEnv)
	if path == "" {
		t.Skipf("%s is not set", testShEnv)
	}
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}
