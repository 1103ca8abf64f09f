package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge    = errors.New("unsupported forge")
	ErrIssueNotFound       = errors.New("issue not found")
	ErrRepositoryNotFound  = errors.New("repository or tags not found")
	ErrRateLimited         = errors.New("rate limited by forge API")
	ErrUnauthorized        = errors.New("unauthorized access to forge API")
	ErrUnexpectedResponse  = errors.New("unexpected forge API response")
	ErrInvalidForgeBaseURL = errors.New("invalid forge API base URL")
)
