// Package forge queries upstream issue trackers.
package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/issue-watcher/pkg/config"
	"github.com/lerenn/issue-watcher/pkg/issue"
	"github.com/lerenn/issue-watcher/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// GetIssueState fetches the current state of an issue
	GetIssueState(ctx context.Context, ref issue.Reference) (issue.State, error)

	// CountReleaseTags counts the tags published by the referenced repository
	CountReleaseTags(ctx context.Context, ref issue.Reference) (issue.ReleaseCount, error)
}

// Manager manages forge implementations.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a forge manager with the forges configured by cfg.
func NewManager(log logger.Logger, cfg config.Config) (*Manager, error) {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: log,
	}

	github, err := NewGitHub(NewGitHubParams{
		APIURL:  cfg.APIURL,
		Token:   cfg.Token(),
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	m.Register(github)

	return m, nil
}

// Register adds or replaces a forge implementation.
func (m *Manager) Register(f Forge) {
	m.logger.Logf("registering forge %s", f.Name())
	m.forges[f.Name()] = f
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}
