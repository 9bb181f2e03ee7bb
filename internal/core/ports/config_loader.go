package ports

import "go.trai.ch/mk/internal/core/domain"

// SettingsLoader defines the interface for loading toolchain settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings for the project rooted at cwd.
	Load(cwd string) (domain.Settings, error)
}
