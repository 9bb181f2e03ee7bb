package domain

import "path/filepath"

const (
	// DefaultTool is the build/test tool the targets delegate to.
	DefaultTool = "cargo"

	// DefaultOutputDir is the tool's conventional build-output directory.
	DefaultOutputDir = "target"

	// OutputDirEnv overrides the build-output directory, following the tool's own convention.
	OutputDirEnv = "CARGO_TARGET_DIR"
)

// Settings describes the external toolchain the targets run against.
type Settings struct {
	// Tool is the executable name looked up on PATH.
	Tool string
	// OutputDir is the build-output directory removed by the clean target.
	// Relative paths are resolved against WorkDir.
	OutputDir string
	// WorkDir is the directory the tool runs in.
	WorkDir string
	// Journal enables the run journal under StateDirName.
	// It is off by default so that runs leave nothing in the project.
	Journal bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Tool:      DefaultTool,
		OutputDir: DefaultOutputDir,
		WorkDir:   ".",
	}
}

// OutputPath returns the build-output directory resolved against WorkDir.
func (s Settings) OutputPath() string {
	if filepath.IsAbs(s.OutputDir) {
		return filepath.Clean(s.OutputDir)
	}
	return filepath.Join(s.WorkDir, s.OutputDir)
}
