package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/shirhatti/cad/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/shirhatti/cad/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"github.com/shirhatti/cad/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/shirhatti/cad/internal/adapters/oci"    //nolint:depguard // Wired in app layer
	"github.com/shirhatti/cad/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"github.com/shirhatti/cad/internal/adapters/telemetry/progrock"
	"github.com/shirhatti/cad/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI
// layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.FinderNodeID,
			fs.HasherNodeID,
			oci.NodeID,
			logger.NodeID,
			progrock.NodeID,
			shell.NodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.ModelFinder](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*shell.Runner](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, finder, hasher, store, log, telemetry, runner), nil
}
