// Package journal records the most recent outcome of every target.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunJournal = (*Journal)(nil)

// Journal implements ports.RunJournal using a flat JSON file.
type Journal struct {
	path    string
	mu      sync.RWMutex
	records map[string]domain.RunRecord
}

// Open returns a Journal backed by the file at path, loading any existing records.
func Open(path string) (*Journal, error) {
	j := newJournal(path)
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func newJournal(path string) *Journal {
	return &Journal{
		path:    filepath.Clean(path),
		records: make(map[string]domain.RunRecord),
	}
}

func (j *Journal) load() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrJournalReadFailed, err), "path", j.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &j.records); err != nil {
		return zerr.With(errors.Join(domain.ErrJournalReadFailed, err), "path", j.path)
	}

	return nil
}

func (j *Journal) save() error {
	j.mu.RLock()
	data, err := json.MarshalIndent(j.records, "", "  ")
	j.mu.RUnlock()
	if err != nil {
		return errors.Join(domain.ErrJournalWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(j.path), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrJournalWriteFailed, err), "path", j.path)
	}

	tmp := j.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrJournalWriteFailed, err), "path", tmp)
	}
	if err := os.Rename(tmp, j.path); err != nil {
		return zerr.With(errors.Join(domain.ErrJournalWriteFailed, err), "path", j.path)
	}

	return nil
}

// Get retrieves the last record for the named target.
func (j *Journal) Get(target string) (*domain.RunRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	rec, ok := j.records[target]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Record stores the outcome of a run of target and persists the journal.
func (j *Journal) Record(target domain.Target, outcome domain.RunOutcome) error {
	rec := domain.RunRecord{
		Target:      target.Name,
		Fingerprint: Fingerprint(target.Steps),
		ExitCode:    outcome.ExitCode,
		StartedAt:   outcome.StartedAt.UTC(),
		Duration:    outcome.Duration,
	}

	j.mu.Lock()
	j.records[target.Name] = rec
	j.mu.Unlock()

	return j.save()
}
