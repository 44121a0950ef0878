package app

import (
	"context"
	"fmt"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/engine/merger"
	"go.trai.ch/zerr"
)

// RecordInput describes the outputs of one finished compile.
type RecordInput struct {
	// FactsDir holds one facts file per compiled class.
	FactsDir string
	// ConstantsFile holds the constant usage of the compiled classes. Without it, the
	// constants listed in the facts files are used.
	ConstantsFile string
	// AnnotationsFile holds the annotation processing report. Optional.
	AnnotationsFile string
	// Removed names classes deleted since the previous compile.
	Removed []string
	// Full discards the previous state instead of updating it.
	Full bool
}

// RecordSummary reports what Record persisted.
type RecordSummary struct {
	Analyzed       int
	GraphClasses   int
	IndexedClasses int
	Full           bool
}

// Record folds the outputs of a compile into the persisted state. An incremental record without
// previous state is treated as a full one.
func (a *App) Record(ctx context.Context, in RecordInput) (RecordSummary, error) {
	ctx, span := a.tracer.Start(ctx, "record")
	defer span.End()
	span.SetAttribute("facts_dir", in.FactsDir)
	span.SetAttribute("removed", len(in.Removed))

	summary, err := a.record(ctx, in)
	if err != nil {
		span.RecordError(err)
		return RecordSummary{}, err
	}
	span.SetAttribute("full", summary.Full)
	span.SetAttribute("analyzed", summary.Analyzed)
	span.SetAttribute("graph_classes", summary.GraphClasses)
	span.SetAttribute("indexed_classes", summary.IndexedClasses)
	return summary, nil
}

func (a *App) record(ctx context.Context, in RecordInput) (RecordSummary, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return RecordSummary{}, err
	}

	fresh, err := a.collect(ctx, in.FactsDir, cfg.Parallelism)
	if err != nil {
		return RecordSummary{}, err
	}
	removed := domain.NewClassSet(domain.NewClassNames(in.Removed)...)

	var previous previousState
	if !in.Full {
		if previous, err = a.loadPrevious(cfg); err != nil {
			return RecordSummary{}, err
		}
		if previous.graph == nil {
			a.logger.Info(NoPreviousCompile + ", recording a full compile")
			previous = previousState{}
			in.Full = true
		}
	}

	usage := usageFromFacts(fresh)
	if in.ConstantsFile != "" {
		if usage, err = a.usageReader.ReadConstantUsage(in.ConstantsFile); err != nil {
			return RecordSummary{}, err
		}
	}

	apFacts := previous.facts
	if in.AnnotationsFile != "" {
		if apFacts, err = a.apReader.ReadAnnotationFacts(in.AnnotationsFile); err != nil {
			return RecordSummary{}, err
		}
	}

	graph := domain.UpdateGraph(previous.graph, fresh, removed)
	index := merger.Merge(usage, previous.index, removed)

	if err := a.save(cfg, graph, index, apFacts); err != nil {
		return RecordSummary{}, err
	}

	summary := RecordSummary{
		Analyzed:       len(fresh),
		GraphClasses:   graph.Len(),
		IndexedClasses: index.Len(),
		Full:           in.Full,
	}
	a.logger.Info(fmt.Sprintf("recorded %d analyzed classes: %d in graph, %d inlining constants",
		summary.Analyzed, summary.GraphClasses, summary.IndexedClasses))
	return summary, nil
}

func (a *App) collect(ctx context.Context, dir string, parallelism int) ([]domain.ClassFacts, error) {
	ctx, span := a.tracer.Start(ctx, "collect")
	defer span.End()
	span.SetAttribute("parallelism", parallelism)

	fresh, err := a.collector.CollectDir(ctx, dir, parallelism)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("analyzed", len(fresh))
	return fresh, nil
}

// usageFromFacts maps every analyzed class to the constants it inlines, so that a class which
// stopped inlining constants leaves the index.
func usageFromFacts(fresh []domain.ClassFacts) map[domain.ClassName][]domain.ConstantRef {
	usage := make(map[domain.ClassName][]domain.ConstantRef, len(fresh))
	for _, f := range fresh {
		usage[f.Name] = f.ConstantRefs
	}
	return usage
}

type previousState struct {
	graph *domain.ClassDependencyGraph
	index *domain.ConstantOriginIndex
	facts *domain.AnnotationProcessingFacts
}

func (a *App) loadPrevious(cfg *domain.Config) (previousState, error) {
	var s previousState
	var err error
	if s.graph, err = a.store.LoadGraph(cfg.Cache); err != nil {
		return s, zerr.Wrap(err, domain.ErrSessionLoadFailed.Error())
	}
	if s.index, err = a.store.LoadIndex(cfg.Cache); err != nil {
		return s, zerr.Wrap(err, domain.ErrSessionLoadFailed.Error())
	}
	if s.facts, err = a.store.LoadAnnotationFacts(cfg.Cache); err != nil {
		return s, zerr.Wrap(err, domain.ErrSessionLoadFailed.Error())
	}
	return s, nil
}

func (a *App) save(
	cfg *domain.Config,
	graph *domain.ClassDependencyGraph,
	index *domain.ConstantOriginIndex,
	apFacts *domain.AnnotationProcessingFacts,
) error {
	if err := a.store.SaveGraph(cfg.Cache, graph); err != nil {
		return zerr.Wrap(err, domain.ErrRecordFailed.Error())
	}
	if err := a.store.SaveIndex(cfg.Cache, index); err != nil {
		return zerr.Wrap(err, domain.ErrRecordFailed.Error())
	}
	if err := a.store.SaveAnnotationFacts(cfg.Cache, apFacts); err != nil {
		return zerr.Wrap(err, domain.ErrRecordFailed.Error())
	}
	return nil
}
