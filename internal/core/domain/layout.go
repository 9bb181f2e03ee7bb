package domain

import "path/filepath"

const (
	// StateDirName is the directory mk keeps its own state in.
	// It sits beside, not inside, the build-output directory so clean leaves it alone.
	StateDirName = ".mk"

	// JournalFileName is the name of the run journal file.
	JournalFileName = "runs.json"

	// ConfigFileName is the name of the optional settings file.
	ConfigFileName = "mk.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultJournalPath returns the default path for the run journal.
// It joins .mk and runs.json.
func DefaultJournalPath() string {
	return filepath.Join(StateDirName, JournalFileName)
}
