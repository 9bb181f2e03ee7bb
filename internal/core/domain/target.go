// Package domain contains the core domain models for the target dispatcher.
package domain

import (
	"slices"
	"strings"
)

// StepKind identifies what a Step does when it runs.
type StepKind int

const (
	// StepExec spawns an external process.
	StepExec StepKind = iota
	// StepRemove deletes a directory tree.
	StepRemove
)

// String returns a short name for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepExec:
		return "exec"
	case StepRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Step is a single unit of work inside a target.
// Exec steps use Program, Args and Dir; remove steps use Path and keep Dir intact.
type Step struct {
	Kind    StepKind
	Program string
	Args    []string
	Dir     string
	Path    string
}

// Exec returns a step that runs program with args in dir.
func Exec(dir, program string, args ...string) Step {
	return Step{
		Kind:    StepExec,
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// Remove returns a step that deletes path recursively.
// The removal must never take dir, the directory the tool works in, with it.
func Remove(dir, path string) Step {
	return Step{
		Kind: StepRemove,
		Path: path,
		Dir:  dir,
	}
}

// String renders the step as it would be echoed by a shell.
func (s Step) String() string {
	switch s.Kind {
	case StepExec:
		if len(s.Args) == 0 {
			return s.Program
		}
		return s.Program + " " + strings.Join(s.Args, " ")
	case StepRemove:
		return "rm -rf " + s.Path
	default:
		return s.Kind.String()
	}
}

func (s Step) clone() Step {
	s.Args = slices.Clone(s.Args)
	return s
}

// Target is a named, user-selectable unit of work.
type Target struct {
	Name         string
	Description  string
	Steps        []Step
	Dependencies []string
}

// IsPhony reports whether the target performs no work of its own.
func (t Target) IsPhony() bool {
	return len(t.Steps) == 0
}

func (t Target) clone() Target {
	steps := make([]Step, len(t.Steps))
	for i, s := range t.Steps {
		steps[i] = s.clone()
	}
	t.Steps = steps
	t.Dependencies = slices.Clone(t.Dependencies)
	return t
}
