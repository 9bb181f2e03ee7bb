// Package main is the entry point for the mk target dispatcher.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/cmd/mk/commands"
	"go.trai.ch/mk/internal/app"
	"go.trai.ch/mk/internal/core/domain"
	_ "go.trai.ch/mk/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Interrupts reach the child directly through the shared process group.
	// mk survives them, waits for the child and reports its status.
	stop := holdInterrupts()
	defer stop()

	ctx := context.Background()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return domain.ExitFailure
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return domain.ExitCode(err)
	}
	return domain.ExitOK
}

// holdInterrupts keeps terminal interrupts from killing mk.
// Caught signals revert to their default in exec'd children; ignored ones would not.
func holdInterrupts() func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGQUIT)
	return func() {
		signal.Stop(sigs)
	}
}
