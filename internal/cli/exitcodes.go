package cli

import (
	"errors"

	"github.com/yaklabco/mdspan/internal/configloader"
	"github.com/yaklabco/mdspan/pkg/fsutil"
)

// Exit codes for mdspan.
const (
	// ExitSuccess indicates every file rendered.
	ExitSuccess = 0

	// ExitRenderFailures indicates some files could not be read.
	ExitRenderFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrRenderFailures is returned when at least one file failed to render.
var ErrRenderFailures = errors.New("some files could not be rendered")

// errUsage marks command-line mistakes.
var errUsage = errors.New("invalid usage")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var validation *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrRenderFailures):
		return ExitRenderFailures
	case errors.Is(err, errUsage):
		return ExitInvalidUsage
	case errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge),
		errors.Is(err, fsutil.ErrExists):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
