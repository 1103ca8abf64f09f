package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrConfigNotInitialized = errors.New("configuration not found. Run 'iw init' to initialize")
	ErrConfigAlreadyExists  = errors.New("configuration file already exists")

	// Configuration validation errors.
	ErrInvalidAPIURL  = errors.New("api_url must be an absolute http(s) URL")
	ErrWebURLEmpty    = errors.New("web_url cannot be empty")
	ErrInvalidTimeout = errors.New("timeout must be positive")
	ErrInvalidWatch   = errors.New("invalid watch")
)
