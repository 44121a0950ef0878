package ports

import (
	"context"

	"go.trai.ch/recomp/internal/core/domain"
)

// ClassAnalyzer extracts the dependency facts of compiled classes.
// Analyze must be safe to call concurrently for different sources.
//
//go:generate mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type ClassAnalyzer interface {
	// Sources lists the analyzable sources below root in lexical order.
	Sources(root string) ([]string, error)

	// Analyze extracts the facts of one source.
	Analyze(ctx context.Context, source string) (domain.ClassFacts, error)
}
