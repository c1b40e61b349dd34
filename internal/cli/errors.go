package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/pterm/pterm"
)

// reportedError marks an error whose details were already written to the
// command output. It only sets the exit status.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// FormatError renders err for the terminal. It returns an empty string for
// errors the command has already reported.
func FormatError(err error) string {
	var done *reportedError
	if stderrors.As(err, &done) {
		return ""
	}

	prefix := MsgErrorPrefix
	if isTerminal(os.Stderr) {
		prefix = pterm.FgRed.Sprint(prefix)
	}

	var te *errors.ThemerError
	if !stderrors.As(err, &te) {
		return fmt.Sprintf("%s %v", prefix, err)
	}

	var out strings.Builder
	out.WriteString(prefix + " " + te.Message)
	if te.Wrapped != nil {
		out.WriteString(": " + te.Wrapped.Error())
	}

	switch te.Code {
	case errors.ErrConfigInvalid:
		if problems, ok := te.Details["problems"].([]string); ok {
			for _, p := range problems {
				out.WriteString("\n  - " + p)
			}
		}
	case errors.ErrUnknownTheme:
		if suggestions, ok := te.Details["suggestions"].([]string); ok && len(suggestions) > 0 {
			out.WriteString("\n" + fmt.Sprintf(MsgDidYouMean, strings.Join(suggestions, ", ")))
		}
		out.WriteString("\n" + MsgUnknownTheme)
	}

	return out.String()
}

// Execute runs the root command with ctx and returns the process exit status
func Execute(ctx context.Context) int {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if msg := FormatError(err); msg != "" {
			_, _ = fmt.Fprintln(os.Stderr, msg)
		}
		return 1
	}
	return 0
}
