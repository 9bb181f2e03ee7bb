package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/config"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600)
	require.NoError(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(domain.OutputDirEnv, "")
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()

	settings, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, domain.Settings{
		Tool:      "cargo",
		OutputDir: "target",
		WorkDir:   tmpDir,
	}, settings)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(domain.OutputDirEnv, "")
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
version: "1"
tool: cross
outputDir: build
workDir: crates
journal: true
`)

	settings, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "cross", settings.Tool)
	assert.Equal(t, "build", settings.OutputDir)
	assert.Equal(t, filepath.Join(tmpDir, "crates"), settings.WorkDir)
	assert.Equal(t, filepath.Join(tmpDir, "crates", "build"), settings.OutputPath())
	assert.True(t, settings.Journal)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv(domain.OutputDirEnv, "")
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "")

	settings, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "cargo", settings.Tool)
	assert.Equal(t, "target", settings.OutputDir)
	assert.False(t, settings.Journal)
}

func TestLoad_EnvironmentOverridesOutputDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "outputDir: build\n")
	t.Setenv(domain.OutputDirEnv, "/var/cache/cargo-target")

	settings, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/cargo-target", settings.OutputPath())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "tool: [unclosed", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown field", content: "targets:\n  all: []\n", wantErr: domain.ErrConfigParseFailed},
		{name: "tool with arguments", content: "tool: cargo +nightly\n", wantErr: domain.ErrInvalidTool},
		{name: "future version", content: "version: \"2\"\ntool: cargo\n", wantErr: domain.ErrUnsupportedConfigVersion},
		{name: "journal not a bool", content: "journal: sometimes\n", wantErr: domain.ErrConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(domain.OutputDirEnv, "")
			ctrl := gomock.NewController(t)
			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, tt.content)

			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()

	// A directory in place of the file cannot be read as one.
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, domain.ConfigFileName), 0o750))

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
