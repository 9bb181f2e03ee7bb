package domain

import "time"

// RunOutcome is the result of running a single target.
type RunOutcome struct {
	ExitCode  int
	StartedAt time.Time
	Duration  time.Duration
}

// RunRecord is the journal entry for the most recent run of a target.
// It is informational only: a record never causes a target to be skipped.
type RunRecord struct {
	Target      string        `json:"target,omitzero"`
	Fingerprint string        `json:"fingerprint,omitzero"`
	ExitCode    int           `json:"exit_code"`
	StartedAt   time.Time     `json:"started_at,omitzero"`
	Duration    time.Duration `json:"duration,omitzero"`
}
