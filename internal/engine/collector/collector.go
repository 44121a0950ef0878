// Package collector extracts the dependency facts of a compile in parallel and hands them over
// for single-threaded assembly into the class dependency graph.
package collector

import (
	"context"
	"runtime"
	"slices"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Collector runs a ClassAnalyzer over many sources.
type Collector struct {
	analyzer ports.ClassAnalyzer
}

// New creates a Collector backed by analyzer.
func New(analyzer ports.ClassAnalyzer) *Collector {
	return &Collector{analyzer: analyzer}
}

// CollectDir analyzes every source the analyzer finds below root.
func (c *Collector) CollectDir(ctx context.Context, root string, parallelism int) ([]domain.ClassFacts, error) {
	sources, err := c.analyzer.Sources(root)
	if err != nil {
		return nil, err
	}
	return c.Collect(ctx, sources, parallelism)
}

// Collect analyzes sources with at most parallelism analyses in flight and returns the facts
// ordered by class name. The first failure cancels the remaining analyses.
func (c *Collector) Collect(ctx context.Context, sources []string, parallelism int) ([]domain.ClassFacts, error) {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	// Each analysis owns one slot; nothing else is shared between workers.
	results := make([]domain.ClassFacts, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			facts, err := c.analyzer.Analyze(ctx, source)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrAnalysisFailed.Error()), "source", source)
			}
			results[i] = facts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b domain.ClassFacts) int {
		return a.Name.Compare(b.Name)
	})
	return results, nil
}
