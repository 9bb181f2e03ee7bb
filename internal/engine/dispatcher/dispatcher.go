// Package dispatcher implements the target dispatcher.
package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

// dispatch holds the state of a single Dispatch call.
type dispatch struct {
	journal   ports.RunJournal
	satisfied map[string]bool
}

// discardJournal is used when the run journal is disabled.
type discardJournal struct{}

func (discardJournal) Get(string) (*domain.RunRecord, error) { return nil, nil }

func (discardJournal) Record(domain.Target, domain.RunOutcome) error { return nil }

// TargetStatus represents the status of a target within one dispatch.
type TargetStatus string

const (
	// StatusPending indicates the target has not started.
	StatusPending TargetStatus = "Pending"
	// StatusRunning indicates the target's steps are executing.
	StatusRunning TargetStatus = "Running"
	// StatusSucceeded indicates every step of the target succeeded.
	StatusSucceeded TargetStatus = "Succeeded"
	// StatusFailed indicates a step of the target failed.
	StatusFailed TargetStatus = "Failed"
)

// Dispatcher resolves a target name and runs its steps strictly in order,
// stopping at the first failure.
type Dispatcher struct {
	executor ports.Executor
	remover  ports.Remover
	journal  ports.RunJournal
	logger   ports.Logger

	mu     sync.RWMutex
	status map[string]TargetStatus
}

// New creates a new Dispatcher.
func New(
	executor ports.Executor,
	remover ports.Remover,
	journal ports.RunJournal,
	logger ports.Logger,
) *Dispatcher {
	return &Dispatcher{
		executor: executor,
		remover:  remover,
		journal:  journal,
		logger:   logger,
		status:   make(map[string]TargetStatus),
	}
}

// Dispatch runs the named target from table after its dependencies.
//
// An unknown name fails before anything runs. Otherwise steps run one at a
// time; the first failing step ends the dispatch and its error is returned
// unchanged apart from target metadata, so the exit status of a failed
// command survives.
//
// The run journal is read and written only when the table's settings enable it.
func (d *Dispatcher) Dispatch(ctx context.Context, table *domain.Table, name string) error {
	target, err := table.Resolve(name)
	if err != nil {
		return err
	}

	d.resetStatus(table)

	journal := d.journal
	if !table.Settings().Journal {
		journal = discardJournal{}
	}

	return d.run(ctx, table, target, &dispatch{journal: journal, satisfied: make(map[string]bool)})
}

// run satisfies the dependencies of target depth-first, then executes it.
// Each target runs at most once per dispatch.
func (d *Dispatcher) run(ctx context.Context, table *domain.Table, target domain.Target, state *dispatch) error {
	if state.satisfied[target.Name] {
		return nil
	}
	state.satisfied[target.Name] = true

	for _, depName := range target.Dependencies {
		dep, ok := table.Lookup(depName)
		if !ok {
			return zerr.With(
				zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "unresolved dependency"), "target", target.Name),
				"dependency", depName,
			)
		}
		if err := d.run(ctx, table, dep, state); err != nil {
			return err
		}
	}

	return d.execute(ctx, target, state.journal)
}

func (d *Dispatcher) execute(ctx context.Context, target domain.Target, journal ports.RunJournal) error {
	d.updateStatus(target.Name, StatusRunning)

	// Phony targets have nothing to run and leave no record.
	if target.IsPhony() {
		d.updateStatus(target.Name, StatusSucceeded)
		return nil
	}

	d.logger.Info("running " + target.Name)
	d.reportPreviousRun(journal, target.Name)

	start := time.Now()
	err := d.runSteps(ctx, target)
	d.recordRun(journal, target, start, err)

	if err != nil {
		d.updateStatus(target.Name, StatusFailed)
		return zerr.With(err, "target", target.Name)
	}

	d.updateStatus(target.Name, StatusSucceeded)
	return nil
}

func (d *Dispatcher) runSteps(ctx context.Context, target domain.Target) error {
	for i, step := range target.Steps {
		d.logger.Info(step.String())

		if err := d.runStep(ctx, step); err != nil {
			return zerr.With(err, "step", i+1)
		}
	}
	return nil
}

func (d *Dispatcher) runStep(ctx context.Context, step domain.Step) error {
	switch step.Kind {
	case domain.StepExec:
		return d.executor.Execute(ctx, step)
	case domain.StepRemove:
		return d.remover.RemoveAll(step.Path, step.Dir)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownStepKind, "dispatch"), "kind", step.Kind.String())
	}
}

func (d *Dispatcher) reportPreviousRun(journal ports.RunJournal, name string) {
	prev, err := journal.Get(name)
	if err != nil || prev == nil {
		return
	}
	d.logger.Info(fmt.Sprintf("%s: previous run exited %d at %s",
		name, prev.ExitCode, prev.StartedAt.Local().Format(time.DateTime)))
}

// recordRun appends the outcome to the journal. Journal failures are logged only.
func (d *Dispatcher) recordRun(journal ports.RunJournal, target domain.Target, start time.Time, runErr error) {
	outcome := domain.RunOutcome{
		ExitCode:  domain.ExitCode(runErr),
		StartedAt: start,
		Duration:  time.Since(start),
	}
	if err := journal.Record(target, outcome); err != nil {
		d.logger.Warn("could not record run of " + target.Name + ": " + err.Error())
	}
}

func (d *Dispatcher) resetStatus(table *domain.Table) {
	d.mu.Lock()
	defer d.mu.Unlock()

	clear(d.status)
	for _, name := range table.Names() {
		d.status[name] = StatusPending
	}
}

func (d *Dispatcher) updateStatus(name string, status TargetStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status[name] = status
}

// Status returns the status of the named target in the most recent dispatch.
func (d *Dispatcher) Status(name string) TargetStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status[name]
}
