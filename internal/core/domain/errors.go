package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned when the requested target is not in the table.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrToolNotFound is returned when the external tool cannot be found on PATH.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrCommandFailed is matched by every *ExitError.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandStartFailed is returned when a command was found but could not be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrUnknownStepKind is returned when a step has a kind the dispatcher cannot run.
	ErrUnknownStepKind = zerr.New("unknown step kind")

	// ErrCleanFailed is returned when the build-output directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build output")

	// ErrUnsafeRemovePath is returned when asked to remove an empty path, "." or a filesystem root.
	ErrUnsafeRemovePath = zerr.New("refusing to remove path")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares a version mk does not read.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidTool is returned when the configured tool name is unusable.
	ErrInvalidTool = zerr.New("invalid tool")

	// ErrJournalReadFailed is returned when the run journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read run journal")

	// ErrJournalWriteFailed is returned when the run journal cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write run journal")
)
