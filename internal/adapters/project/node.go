package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassy/internal/adapters/config"
	"go.trai.ch/sassy/internal/adapters/fs"
	"go.trai.ch/sassy/internal/core/ports"
)

// NodeID is the unique identifier for the project graph Graft node.
const NodeID graft.ID = "adapter.project_graph"

func init() {
	graft.Register(graft.Node[ports.ProjectGraph]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.ProjectGraph, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewGraph(loader, walker), nil
		},
	})
}
