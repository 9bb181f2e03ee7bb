// Package config provides the settings loader for mk.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using an optional YAML file.
type Loader struct {
	logger   ports.Logger
	filename string
}

// NewLoader creates a Loader reading mk.yaml.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		logger:   log,
		filename: domain.ConfigFileName,
	}
}

// Load returns the settings for the project rooted at cwd.
//
// Precedence, lowest to highest: built-in defaults, mk.yaml, and for the
// output directory the CARGO_TARGET_DIR environment variable, because that is
// where the tool itself will write. A missing mk.yaml is not an error.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	settings.WorkDir = cwd

	path := filepath.Join(cwd, l.filename)
	file, found, err := readMkfile(path)
	if err != nil {
		return domain.Settings{}, err
	}
	if found {
		if err := apply(&settings, file, cwd); err != nil {
			return domain.Settings{}, zerr.With(err, "path", path)
		}
		l.logger.Info("using settings from " + path)
	}

	if dir := os.Getenv(domain.OutputDirEnv); dir != "" {
		settings.OutputDir = dir
	}

	return settings, nil
}

func readMkfile(path string) (Mkfile, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return Mkfile{}, false, nil
		}
		return Mkfile{}, false, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Mkfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Mkfile{}, false, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return file, true, nil
}

func apply(settings *domain.Settings, file Mkfile, cwd string) error {
	if file.Version != "" && file.Version != SchemaVersion {
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigVersion, "check version"), "version", file.Version)
	}

	if file.Tool != "" {
		if strings.ContainsAny(file.Tool, " \t\r\n") {
			return zerr.With(zerr.Wrap(domain.ErrInvalidTool, "tool must be a single executable name"), "tool", file.Tool)
		}
		settings.Tool = file.Tool
	}

	if file.WorkDir != "" {
		if filepath.IsAbs(file.WorkDir) {
			settings.WorkDir = filepath.Clean(file.WorkDir)
		} else {
			settings.WorkDir = filepath.Join(cwd, file.WorkDir)
		}
	}

	if file.OutputDir != "" {
		settings.OutputDir = file.OutputDir
	}

	settings.Journal = file.Journal

	return nil
}
