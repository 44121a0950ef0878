package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/internal/adapters/facts" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/recomp/internal/core/ports"
)

// NodeID is the unique identifier for the collector Graft node.
const NodeID graft.ID = "engine.collector"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{facts.AnalyzerNodeID},
		Run: func(ctx context.Context) (*Collector, error) {
			analyzer, err := graft.Dep[ports.ClassAnalyzer](ctx)
			if err != nil {
				return nil, err
			}
			return New(analyzer), nil
		},
	})
}
