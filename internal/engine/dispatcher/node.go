package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pmk/internal/adapters/fs"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/adapters/state" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/pmk/internal/engine/builder"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			state.SelectionNodeID,
			fs.FilesystemNodeID,
			builder.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			selections, err := graft.Dep[ports.SelectionStore](ctx)
			if err != nil {
				return nil, err
			}

			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}

			b, err := graft.Dep[*builder.Builder](ctx)
			if err != nil {
				return nil, err
			}

			return New(selections, filesystem, b), nil
		},
	})
}
