package fs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RunCommand runs a command in dir and waits for it to finish.
// A non-zero exit status is reported as ErrCommandFailed with the command output.
func (f *realFS) RunCommand(ctx context.Context, dir, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err == nil {
		return output, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return output, fmt.Errorf("%w: %s %s exited with status %d: %s",
			ErrCommandFailed, command, strings.Join(args, " "), exitErr.ExitCode(), strings.TrimSpace(string(output)))
	}
	return output, err
}
