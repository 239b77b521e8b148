package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/fsutil"
	"github.com/yaklabco/jirascope/pkg/jira"
	"github.com/yaklabco/jirascope/pkg/parser/goldmark"
	"github.com/yaklabco/jirascope/pkg/runner"
)

// ErrRoundTripFailed is returned by roundtrip --check when a file errored
// or did not survive the round trip.
var ErrRoundTripFailed = errors.New("round trip failed")

// errUsage marks bad flags and arguments.
var errUsage = errors.New("invalid usage")

// maxArgs is cobra.MaximumNArgs with the error marked as a usage error.
func maxArgs(n int) cobra.PositionalArgs {
	check := cobra.MaximumNArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}

// Exit codes for jirascope.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRoundTripFailed indicates a checked round trip found unstable files.
	ExitRoundTripFailed = 1

	// ExitConversionError indicates input that could not be converted.
	ExitConversionError = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code of a round-trip run.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil || !check {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitRoundTripFailed
	}
	return ExitSuccess
}

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	var adfErr *adf.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrRoundTripFailed):
		return ExitRoundTripFailed
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrNoInput),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return ExitIOError
	case errors.Is(err, goldmark.ErrUnsupportedNode),
		errors.Is(err, adf.ErrInvalidDocument),
		errors.Is(err, adf.ErrInvalidAttribute),
		errors.Is(err, adf.ErrUnknownNode),
		errors.Is(err, jira.ErrInvalidPayload),
		errors.Is(err, jira.ErrFieldNotFound),
		errors.As(err, &adfErr):
		return ExitConversionError
	case errors.Is(err, errUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
