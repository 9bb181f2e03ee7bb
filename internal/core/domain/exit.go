package domain

import (
	"errors"
	"strconv"
)

// Process exit statuses reported by mk itself.
// A failed command's own status is propagated unchanged instead.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUnknownTarget = 64
	ExitToolNotFound  = 127

	exitSignalBase = 128
)

// ExitError reports that an external command finished with a non-zero status.
type ExitError struct {
	Code  int
	Cause error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return "exit status " + strconv.Itoa(e.Code)
}

// Unwrap returns the underlying process error.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// Is makes every ExitError match ErrCommandFailed.
func (e *ExitError) Is(target error) bool {
	return target == ErrCommandFailed
}

// SignalExitCode returns the shell convention status for a process killed by signal sig.
func SignalExitCode(sig int) int {
	return exitSignalBase + sig
}

// ExitCode maps an error to the status the mk process exits with.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		if exitErr.Code <= 0 {
			return ExitFailure
		}
		return exitErr.Code
	case errors.Is(err, ErrUnknownTarget):
		return ExitUnknownTarget
	case errors.Is(err, ErrToolNotFound):
		return ExitToolNotFound
	default:
		return ExitFailure
	}
}
