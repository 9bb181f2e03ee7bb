// Package app implements the application layer for mk.
package app

import (
	"context"
	"slices"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/mk/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.SettingsLoader
	dispatcher *dispatcher.Dispatcher
	root       string
}

// New creates a new App instance.
func New(loader ports.SettingsLoader, d *dispatcher.Dispatcher) *App {
	return &App{
		loader:     loader,
		dispatcher: d,
		root:       ".",
	}
}

// WithRoot sets the directory settings are loaded from.
func (a *App) WithRoot(dir string) *App {
	a.root = dir
	return a
}

// Run dispatches the named target. An empty name selects the default target.
func (a *App) Run(ctx context.Context, target string) error {
	// 1. Validate the target; names do not depend on settings
	defaults := domain.NewTable(domain.DefaultSettings())
	if target == "" {
		target = defaults.Default()
	}
	if _, err := defaults.Resolve(target); err != nil {
		return err
	}

	// 2. Load the settings
	settings, err := a.loader.Load(a.root)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	// 3. Dispatch
	return a.dispatcher.Dispatch(ctx, domain.NewTable(settings), target)
}

// Targets lists the selectable targets in definition order.
func (a *App) Targets() []domain.Target {
	return slices.Collect(domain.NewTable(domain.DefaultSettings()).All())
}
