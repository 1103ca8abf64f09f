package rcfile

import "errors"

// RC file errors.
var (
	ErrScriptNotFound = errors.New("script not found")
	ErrGeneration     = errors.New("failed to generate RC file")
	ErrMalformed      = errors.New("RC file is malformed")
)
