// Package configs provides embedded configuration files for the issue watcher.
package configs

import _ "embed"

// DefaultConfigYAML contains the configuration written by `iw init`.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
