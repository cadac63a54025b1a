package selector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassy/internal/adapters/backend/libsass" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/fs"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/probe"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/adapters/shell"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sassy/internal/core/ports"
)

// NodeID is the unique identifier for the backend selector Graft node.
const NodeID graft.ID = "engine.selector"

func init() {
	graft.Register(graft.Node[ports.BackendSelector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			probe.NodeID,
			shell.NodeID,
			fs.NodeID,
			libsass.NodeID,
		},
		Run: func(ctx context.Context) (ports.BackendSelector, error) {
			envProbe, err := graft.Dep[ports.EnvironmentProbe](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			native, err := graft.Dep[ports.NativeCompiler](ctx)
			if err != nil {
				return nil, err
			}

			return New(envProbe, runner, fileSystem, native), nil
		},
	})
}
