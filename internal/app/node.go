package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sassy/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sassy/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sassy/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/sassy/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/sassy/internal/engine/orchestrator"
	"go.trai.ch/sassy/internal/engine/router"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
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
			watcher.NodeID,
			router.NodeID,
			orchestrator.NodeID,
			logger.NodeID,
			metrics.NodeID,
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

	source, err := graft.Dep[ports.SaveSource](ctx)
	if err != nil {
		return nil, err
	}

	r, err := graft.Dep[*router.Router](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.PrometheusRecorder](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, source, r, orch, log, recorder.Handler()), nil
}
