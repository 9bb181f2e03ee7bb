package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/journal" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/shell"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.RemoverNodeID,
			journal.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			remover, err := graft.Dep[ports.Remover](ctx)
			if err != nil {
				return nil, err
			}

			runJournal, err := graft.Dep[ports.RunJournal](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, remover, runJournal, log), nil
		},
	})
}
