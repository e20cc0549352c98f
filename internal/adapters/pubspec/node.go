package pubspec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bazelify/internal/core/ports"
)

// NodeID is the unique identifier for the pubspec reader Graft node.
const NodeID graft.ID = "adapter.pubspec"

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestReader, error) {
			return NewReader(), nil
		},
	})
}
