package fsops

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mate/internal/core/ports"
)

// NodeID is the unique identifier for the file operations Graft node.
const NodeID graft.ID = "adapter.fsops"

func init() {
	graft.Register(graft.Node[ports.FileOps]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileOps, error) {
			return New(), nil
		},
	})
}
