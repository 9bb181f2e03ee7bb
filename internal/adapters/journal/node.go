package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/adapters/logger"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the run journal Graft node.
const NodeID graft.ID = "adapter.run_journal"

func init() {
	graft.Register(graft.Node[ports.RunJournal]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RunJournal, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			path := domain.DefaultJournalPath()
			j, err := Open(path)
			if err != nil {
				// A damaged journal must not stop a build; start over.
				log.Warn("ignoring unreadable run journal " + path + ": " + err.Error())
				return newJournal(path), nil
			}
			return j, nil
		},
	})
}
