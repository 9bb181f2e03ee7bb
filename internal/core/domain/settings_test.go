package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/mk/internal/core/domain"
)

func TestSettings_OutputPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "build")

	tests := []struct {
		name     string
		settings domain.Settings
		want     string
	}{
		{name: "defaults", settings: domain.DefaultSettings(), want: "target"},
		{name: "relative to work dir", settings: domain.Settings{OutputDir: "target", WorkDir: "sub"}, want: filepath.Join("sub", "target")},
		{name: "absolute", settings: domain.Settings{OutputDir: abs + "/", WorkDir: "sub"}, want: abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.OutputPath(); got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
