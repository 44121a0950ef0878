package facts

import (
	"context"

	"github.com/grindlemire/graft"
	fsadapter "go.trai.ch/recomp/internal/adapters/fs"
	"go.trai.ch/recomp/internal/core/ports"
)

const (
	// AnalyzerNodeID is the unique identifier for the class analyzer Graft node.
	AnalyzerNodeID graft.ID = "adapter.facts.analyzer"
	// ConstantUsageNodeID is the unique identifier for the constant usage reader Graft node.
	ConstantUsageNodeID graft.ID = "adapter.facts.constant_usage"
	// AnnotationFactsNodeID is the unique identifier for the annotation facts reader Graft node.
	AnnotationFactsNodeID graft.ID = "adapter.facts.annotation_facts"
)

func init() {
	graft.Register(graft.Node[ports.ClassAnalyzer]{
		ID:        AnalyzerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fsadapter.WalkerNodeID},
		Run: func(ctx context.Context) (ports.ClassAnalyzer, error) {
			walker, err := graft.Dep[*fsadapter.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewAnalyzer(walker), nil
		},
	})

	graft.Register(graft.Node[ports.ConstantUsageReader]{
		ID:        ConstantUsageNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConstantUsageReader, error) {
			return NewConstantUsageReader(), nil
		},
	})

	graft.Register(graft.Node[ports.AnnotationFactsReader]{
		ID:        AnnotationFactsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AnnotationFactsReader, error) {
			return NewAnnotationFactsReader(), nil
		},
	})
}
