package checker

import "errors"

// Checker errors. Every failed check wraps ErrCheckFailed.
var (
	ErrCheckFailed      = errors.New("upstream check failed")
	ErrStateMismatch    = errors.New("issue state mismatch")
	ErrTooManyReleases  = errors.New("too many release tags")
	ErrTrackerQuery     = errors.New("could not query issue tracker")
	ErrInvalidReference = errors.New("invalid check input")
)
