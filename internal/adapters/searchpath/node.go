package searchpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bazelify/internal/core/ports"
)

// NodeID is the unique identifier for the search path Graft node.
const NodeID graft.ID = "adapter.searchpath"

func init() {
	graft.Register(graft.Node[ports.PathLookup]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathLookup, error) {
			return NewLookup(), nil
		},
	})
}
