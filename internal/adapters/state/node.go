package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the state file Graft node.
	NodeID graft.ID = "adapter.state"
	// SelectionNodeID is the unique identifier for the selection store Graft node.
	SelectionNodeID graft.ID = "adapter.selection_store"
	// RecordNodeID is the unique identifier for the build record store Graft node.
	RecordNodeID graft.ID = "adapter.build_record_store"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Store, error) {
			return NewStore(domain.DefaultStatePath())
		},
	})

	graft.Register(graft.Node[ports.SelectionStore]{
		ID:        SelectionNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.SelectionStore, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})

	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        RecordNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.BuildRecordStore, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
