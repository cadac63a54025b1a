package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassy/internal/adapters/config"
	"go.trai.ch/sassy/internal/core/ports"
)

// NodeID is the unique identifier for the output registrar Graft node.
const NodeID graft.ID = "adapter.output_registrar"

func init() {
	graft.Register(graft.Node[ports.OutputRegistrar]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.OutputRegistrar, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(loader), nil
		},
	})
}
