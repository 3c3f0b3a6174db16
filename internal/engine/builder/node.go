package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pmk/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/adapters/pkgconfig"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/adapters/state"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pmk/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			pkgconfig.NodeID,
			fs.HasherNodeID,
			state.RecordNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			records, err := graft.Dep[ports.BuildRecordStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, toolchain, hasher, records, telemetry, log), nil
		},
	})
}
