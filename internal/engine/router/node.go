package router

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassy/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/project" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/core/ports"
)

// NodeID is the unique identifier for the router Graft node.
const NodeID graft.ID = "engine.router"

func init() {
	graft.Register(graft.Node[*Router]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{project.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Router, error) {
			graph, err := graft.Dep[ports.ProjectGraph](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(graph, log), nil
		},
	})
}
