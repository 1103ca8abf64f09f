// Package issue provides data structures and error types for tracked forge issues.
package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidIssueReference = errors.New("invalid issue reference format")
	ErrInvalidRepository     = errors.New("invalid repository reference format")
	ErrUnknownState          = errors.New("unknown issue state")
)
