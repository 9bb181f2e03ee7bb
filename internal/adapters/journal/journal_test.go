package journal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/journal"
	"go.trai.ch/mk/internal/core/domain"
)

func TestJournal_RecordAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mk", "runs.json")

	j, err := journal.Open(path)
	require.NoError(t, err)

	rec, err := j.Get(domain.TargetTest)
	require.NoError(t, err)
	assert.Nil(t, rec)

	table := domain.NewTable(domain.DefaultSettings())
	target, _ := table.Lookup(domain.TargetTest)
	started := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	err = j.Record(target, domain.RunOutcome{ExitCode: 101, StartedAt: started, Duration: 3 * time.Second})
	require.NoError(t, err)

	reopened, err := journal.Open(path)
	require.NoError(t, err)

	rec, err = reopened.Get(domain.TargetTest)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, domain.RunRecord{
		Target:      domain.TargetTest,
		Fingerprint: journal.Fingerprint(target.Steps),
		ExitCode:    101,
		StartedAt:   started,
		Duration:    3 * time.Second,
	}, *rec)
}

func TestJournal_RecordOverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	j, err := journal.Open(path)
	require.NoError(t, err)

	target, _ := domain.NewTable(domain.DefaultSettings()).Lookup(domain.TargetCheck)
	require.NoError(t, j.Record(target, domain.RunOutcome{ExitCode: 2}))
	require.NoError(t, j.Record(target, domain.RunOutcome{ExitCode: 0}))

	rec, err := j.Get(domain.TargetCheck)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 0, rec.ExitCode)
}

func TestOpen_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	j, err := journal.Open(path)
	require.NoError(t, err)

	rec, err := j.Get(domain.TargetAll)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestOpen_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := journal.Open(path)
	require.ErrorIs(t, err, domain.ErrJournalReadFailed)
}

func TestJournal_RecordWriteFailure(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), ".mk")
	j, err := journal.Open(filepath.Join(stateDir, "runs.json"))
	require.NoError(t, err)

	// A regular file where the state directory should be.
	require.NoError(t, os.WriteFile(stateDir, []byte("x"), 0o600))

	target, _ := domain.NewTable(domain.DefaultSettings()).Lookup(domain.TargetAll)
	err = j.Record(target, domain.RunOutcome{})
	require.ErrorIs(t, err, domain.ErrJournalWriteFailed)
}
