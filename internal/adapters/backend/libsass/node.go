package libsass

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassy/internal/core/ports"
)

// NodeID is the unique identifier for the native compiler Graft node.
const NodeID graft.ID = "adapter.native_compiler"

func init() {
	graft.Register(graft.Node[ports.NativeCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NativeCompiler, error) {
			return NewNative(), nil
		},
	})
}
