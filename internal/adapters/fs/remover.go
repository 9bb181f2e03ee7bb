// Package fs provides filesystem adapters.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Remover = (*Remover)(nil)

// Remover implements ports.Remover on the local filesystem.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// RemoveAll deletes path and everything below it.
// Removing a path that does not exist succeeds, so repeated cleans are harmless.
//
// The removal is refused when path is empty or a filesystem root, or when it
// is keep, the current directory, or any directory containing either.
func (r *Remover) RemoveAll(path, keep string) error {
	if path == "" {
		return unsafePath(path, "empty path")
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCleanFailed, err), "path", path)
	}
	if filepath.Dir(target) == target {
		return unsafePath(path, "filesystem root")
	}

	for _, dir := range []string{keep, "."} {
		protected, err := filepath.Abs(dir)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrCleanFailed, err), "path", dir)
		}
		if contains(target, protected) {
			return zerr.With(unsafePath(path, "contains working directory"), "protected", protected)
		}
	}

	if err := os.RemoveAll(target); err != nil {
		return zerr.With(errors.Join(domain.ErrCleanFailed, err), "path", target)
	}
	return nil
}

func unsafePath(path, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrUnsafeRemovePath, reason), "path", path)
}

// contains reports whether parent is child or one of its ancestors. Both must be absolute.
func contains(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
