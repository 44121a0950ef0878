package app

import (
	"context"
)

// Summary describes the persisted state of a project.
type Summary struct {
	CacheDir         string
	Compression      string
	Recorded         bool
	Classes          int
	DependencyToAll  int
	IndexedClasses   int
	IndexedHashes    int
	GeneratedOrigins int
	FullRebuildCause string
	ConstantTracking bool
}

// Inspect loads the persisted state and summarizes it.
func (a *App) Inspect(ctx context.Context) (Summary, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return Summary{}, err
	}

	prev, err := a.loadPrevious(cfg)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		CacheDir:         cfg.Cache.Dir,
		Compression:      cfg.Cache.Compression.String(),
		Recorded:         prev.graph != nil,
		ConstantTracking: cfg.ConstantTracking,
	}
	if prev.graph != nil {
		for _, e := range prev.graph.Entries() {
			s.Classes++
			if e.DependencyToAll {
				s.DependencyToAll++
			}
		}
	}
	s.IndexedClasses = prev.index.Len()
	s.IndexedHashes = len(prev.index.Hashes())
	if prev.facts != nil {
		s.GeneratedOrigins = len(prev.facts.GeneratedTypesByOrigin)
		s.FullRebuildCause = prev.facts.FullRebuildCause
	}
	return s, nil
}
