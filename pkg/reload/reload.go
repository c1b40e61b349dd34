// Package reload runs the configured post-update command so that running
// programs pick up a newly applied theme.
package reload

import (
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/logging"
)

// Shell is the interpreter the reload command is passed to
const Shell = "sh"

// Result is the outcome of a reload command that ran to completion
type Result struct {
	Command string
	Output  string
}

// Run executes command with `sh -c`. The command is killed when ctx is
// cancelled. A command exiting non-zero yields ErrReloadFailed carrying the
// exit code and combined output.
func Run(ctx context.Context, command string) (*Result, error) {
	logger := logging.GetLogger("reload")
	args := []string{"-c", command}
	logging.LogCommand(Shell, args)

	cmd := exec.CommandContext(ctx, Shell, args...)
	output, err := cmd.CombinedOutput()
	out := strings.TrimRight(string(output), "\n")
	if err != nil {
		rerr := errors.Wrapf(err, errors.ErrReloadFailed, "reload command failed: %s", command).
			WithDetail("command", command).
			WithDetail("output", out)
		if exitErr, ok := err.(*exec.ExitError); ok {
			rerr.WithDetail("exitCode", exitErr.ExitCode())
		}
		logger.Error().Err(err).Str("output", out).Msg("Reload command failed")
		return nil, rerr
	}

	logger.Info().Str("command", command).Msg("Reload command completed")
	return &Result{Command: command, Output: out}, nil
}
