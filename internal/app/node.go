package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/facts"     //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/snapshot"  //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/engine/collector"
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
			config.NodeID,
			snapshot.NodeID,
			collector.NodeID,
			facts.ConstantUsageNodeID,
			facts.AnnotationFactsNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
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
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	coll, err := graft.Dep[*collector.Collector](ctx)
	if err != nil {
		return nil, err
	}

	usageReader, err := graft.Dep[ports.ConstantUsageReader](ctx)
	if err != nil {
		return nil, err
	}

	apReader, err := graft.Dep[ports.AnnotationFactsReader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, store, coll, usageReader, apReader, log, tracer), nil
}
