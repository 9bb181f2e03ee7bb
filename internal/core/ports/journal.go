package ports

import "go.trai.ch/mk/internal/core/domain"

// RunJournal keeps the most recent outcome of every target.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type RunJournal interface {
	// Get returns the last record for the named target.
	// Returns nil, nil if the target has never run.
	Get(target string) (*domain.RunRecord, error)

	// Record stores the outcome of a run of target.
	Record(target domain.Target, outcome domain.RunOutcome) error
}
