package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bazelify/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/bazelify/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bazelify/internal/adapters/pubspec"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bazelify/internal/adapters/searchpath" //nolint:depguard // Wired in app layer
	"go.trai.ch/bazelify/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			searchpath.NodeID,
			fs.NodeID,
			logger.NodeID,
			pubspec.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	lookup, err := graft.Dep[ports.PathLookup](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	manifest, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	return New(lookup, fsys, log, manifest), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
