package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Names of the targets known to the dispatcher.
const (
	TargetAll   = "all"
	TargetCheck = "check"
	TargetTest  = "test"
	TargetClean = "clean"
	TargetForce = "force"
)

// Table is the fixed set of targets.
// It is built once from Settings and never mutated afterwards.
type Table struct {
	settings Settings
	order    []string
	targets  map[string]Target
}

// NewTable builds the target table for the toolchain described by s.
// The first target defined is the default goal.
func NewTable(s Settings) *Table {
	tool, dir := s.Tool, s.WorkDir

	defs := []Target{
		{
			Name:        TargetAll,
			Description: "Build with all features and compile the tests without running them",
			Steps: []Step{
				Exec(dir, tool, "build", "--all-features"),
				Exec(dir, tool, "test", "--all", "--all-features", "--no-run"),
			},
			Dependencies: []string{TargetForce},
		},
		{
			Name:         TargetCheck,
			Description:  "Type-check with all features without producing artifacts",
			Steps:        []Step{Exec(dir, tool, "check", "--all-features")},
			Dependencies: []string{TargetForce},
		},
		{
			Name:         TargetTest,
			Description:  "Run the full test suite with test output shown",
			Steps:        []Step{Exec(dir, tool, "test", "--all", "--all-features", "--", "--nocapture")},
			Dependencies: []string{TargetForce},
		},
		{
			Name:         TargetClean,
			Description:  "Remove the build-output directory",
			Steps:        []Step{Remove(dir, s.OutputPath())},
			Dependencies: []string{TargetForce},
		},
		{
			Name:        TargetForce,
			Description: "Always-stale marker; does nothing",
		},
	}

	t := &Table{
		settings: s,
		order:    make([]string, 0, len(defs)),
		targets:  make(map[string]Target, len(defs)),
	}
	for _, def := range defs {
		t.order = append(t.order, def.Name)
		t.targets[def.Name] = def
	}
	return t
}

// Lookup returns a copy of the named target.
func (t *Table) Lookup(name string) (Target, bool) {
	target, ok := t.targets[name]
	if !ok {
		return Target{}, false
	}
	return target.clone(), true
}

// Resolve is Lookup reporting a missing target as ErrUnknownTarget.
func (t *Table) Resolve(name string) (Target, error) {
	target, ok := t.Lookup(name)
	if !ok {
		return Target{}, zerr.With(zerr.Wrap(ErrUnknownTarget, "resolve target"), "target", name)
	}
	return target, nil
}

// Settings returns the settings the table was built from.
func (t *Table) Settings() Settings {
	return t.settings
}

// Default returns the name of the target run when none is requested.
func (t *Table) Default() string {
	return t.order[0]
}

// Names returns the target names in definition order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

// All yields copies of the targets in definition order.
func (t *Table) All() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range t.order {
			if !yield(t.targets[name].clone()) {
				return
			}
		}
	}
}
