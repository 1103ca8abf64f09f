// Package cli provides common configuration and utility functions for the iw CLI.
package cli

import (
	"io"

	"github.com/lerenn/issue-watcher/pkg/checker"
	"github.com/lerenn/issue-watcher/pkg/config"
	"github.com/lerenn/issue-watcher/pkg/fs"
	"github.com/lerenn/issue-watcher/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path in use.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath(fs.NewFS())
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), GetConfigPath())
}

// LoadConfig loads the configuration, falling back to defaults when no file exists.
func LoadConfig() (config.Config, error) {
	return NewConfigManager().GetConfigWithFallback()
}

// NewLogger returns a verbose logger writing to out, or a noop one.
func NewLogger(out io.Writer) logger.Logger {
	if Verbose && !Quiet {
		return logger.NewWriterLogger(out, "")
	}
	return logger.NewNoopLogger()
}

// NewChecker loads the configuration and creates a checker from it.
func NewChecker(out io.Writer) (*checker.Checker, config.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}

	c, err := checker.New(cfg, NewLogger(out))
	if err != nil {
		return nil, config.Config{}, err
	}
	return c, cfg, nil
}
