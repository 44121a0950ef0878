package ports

import "go.trai.ch/recomp/internal/core/domain"

// SnapshotStore defines the interface for persisting the state of the previous compile.
// Every structure is read and written as a whole; Load methods return nil, nil when no
// snapshot exists yet.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// LoadGraph reads the class dependency graph.
	LoadGraph(loc domain.CacheLocation) (*domain.ClassDependencyGraph, error)

	// SaveGraph replaces the class dependency graph.
	SaveGraph(loc domain.CacheLocation, graph *domain.ClassDependencyGraph) error

	// LoadIndex reads the constant origin index.
	LoadIndex(loc domain.CacheLocation) (*domain.ConstantOriginIndex, error)

	// SaveIndex replaces the constant origin index.
	SaveIndex(loc domain.CacheLocation, index *domain.ConstantOriginIndex) error

	// LoadAnnotationFacts reads the annotation processing facts.
	LoadAnnotationFacts(loc domain.CacheLocation) (*domain.AnnotationProcessingFacts, error)

	// SaveAnnotationFacts replaces the annotation processing facts.
	SaveAnnotationFacts(loc domain.CacheLocation, facts *domain.AnnotationProcessingFacts) error

	// Clean removes every snapshot under loc.
	Clean(loc domain.CacheLocation) error
}
