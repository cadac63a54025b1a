package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassy/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/minify"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/registry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/sassy/internal/engine/selector"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			selector.NodeID,
			minify.NodeID,
			registry.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			backendSelector, err := graft.Dep[ports.BackendSelector](ctx)
			if err != nil {
				return nil, err
			}

			minifier, err := graft.Dep[ports.Minifier](ctx)
			if err != nil {
				return nil, err
			}

			registrar, err := graft.Dep[ports.OutputRegistrar](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[*metrics.PrometheusRecorder](ctx)
			if err != nil {
				return nil, err
			}

			return New(fileSystem, backendSelector, minifier, registrar, log, tracer, recorder), nil
		},
	})
}
