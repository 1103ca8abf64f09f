package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrHomeDir is returned when the user's home directory cannot be determined.
	ErrHomeDir = errors.New("failed to determine home directory")

	// ErrCommandFailed is returned when a command exits with a non-zero status.
	ErrCommandFailed = errors.New("command failed")
)
