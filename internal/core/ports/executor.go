// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mk/internal/core/domain"
)

// Executor defines the interface for running exec steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute spawns the step's program, waits for it to exit and reports a
	// non-zero status as an error matching domain.ErrCommandFailed.
	//
	// The process inherits the caller's environment and standard streams.
	Execute(ctx context.Context, step domain.Step) error
}
