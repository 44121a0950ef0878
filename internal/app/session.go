package app

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// NoPreviousCompile is the cause reported for every query before any compile was recorded.
const NoPreviousCompile = "no previous compile recorded"

// Session answers dependents queries against the state one compile left behind. It is loaded
// once and never changes; queries may run concurrently.
type Session struct {
	resolver *resolver.Resolver
	recorded bool
}

// Dependents returns everything to recompile when classes changed. changedConstants holds the
// origin hashes of constants whose value changed.
func (s *Session) Dependents(classes []domain.ClassName, changedConstants domain.HashSet) domain.DependentsSet {
	if !s.recorded {
		return domain.DependencyToAll(NoPreviousCompile)
	}
	return s.resolver.DependentsOfMany(slices.Values(classes), changedConstants)
}

// TypesToReprocess returns the types aggregating annotation processors must see again.
func (s *Session) TypesToReprocess() domain.ClassSet {
	return s.resolver.TypesToReprocess()
}

// OpenSession loads the persisted graph, constant index and annotation facts.
func (a *App) OpenSession(ctx context.Context) (*Session, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return a.openSession(cfg)
}

func (a *App) openSession(cfg *domain.Config) (*Session, error) {
	graph, err := a.store.LoadGraph(cfg.Cache)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSessionLoadFailed.Error())
	}
	index, err := a.store.LoadIndex(cfg.Cache)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSessionLoadFailed.Error())
	}
	facts, err := a.store.LoadAnnotationFacts(cfg.Cache)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSessionLoadFailed.Error())
	}

	if graph == nil {
		a.logger.Warn(NoPreviousCompile + ", every change rebuilds everything")
	}
	if index == nil {
		index = domain.EmptyConstantOriginIndex()
	}

	return &Session{
		resolver: resolver.New(graph,
			resolver.WithConstantIndex(index),
			resolver.WithConstantTracking(cfg.ConstantTracking),
			resolver.WithAnnotationFacts(facts),
		),
		recorded: graph != nil,
	}, nil
}

// DependentsQuery names the changes of one incremental compile in their textual form.
type DependentsQuery struct {
	// Classes are fully qualified names of the changed classes.
	Classes []string
	// Constants are changed constants, each a 32-bit origin hash or a pkg.Owner#FIELD reference.
	Constants []string
}

// DependentsReport is the answer to a DependentsQuery.
type DependentsReport struct {
	Dependents       domain.DependentsSet
	TypesToReprocess domain.ClassSet
}

// Dependents opens a session and answers query.
func (a *App) Dependents(ctx context.Context, query DependentsQuery) (DependentsReport, error) {
	ctx, span := a.tracer.Start(ctx, "dependents")
	defer span.End()
	span.SetAttribute("classes", query.Classes)
	span.SetAttribute("constants", len(query.Constants))

	report, err := a.dependents(ctx, query)
	if err != nil {
		span.RecordError(err)
		return DependentsReport{}, err
	}
	span.SetAttribute("kind", report.Dependents.Kind().String())
	span.SetAttribute("dependents", len(report.Dependents.AllDependents()))
	return report, nil
}

func (a *App) dependents(ctx context.Context, query DependentsQuery) (DependentsReport, error) {
	if len(query.Classes) == 0 {
		return DependentsReport{}, domain.ErrNoClassesSpecified
	}
	changed, err := ParseChangedConstants(query.Constants)
	if err != nil {
		return DependentsReport{}, err
	}

	session, err := a.OpenSession(ctx)
	if err != nil {
		return DependentsReport{}, err
	}

	deps := session.Dependents(domain.NewClassNames(query.Classes), changed)
	if deps.IsDependencyToAll() {
		a.logger.Warn(fmt.Sprintf("full recompilation required: %s", deps.Cause()))
	}
	return DependentsReport{
		Dependents:       deps,
		TypesToReprocess: session.TypesToReprocess(),
	}, nil
}

// ParseChangedConstants turns hashes and references into origin hashes. A value starting with
// a digit is read as a hash (decimal, or hex with a 0x prefix).
func ParseChangedConstants(values []string) (domain.HashSet, error) {
	changed := make(domain.HashSet, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && v[0] >= '0' && v[0] <= '9' {
			h, err := strconv.ParseUint(v, 0, 32)
			if err != nil {
				return nil, zerr.With(domain.ErrInvalidConstantHash, "constant", v)
			}
			changed.Add(domain.ConstantOriginHash(h))
			continue
		}
		ref, err := domain.ParseConstantRef(v)
		if err != nil {
			return nil, err
		}
		changed.Add(ref.OriginHash())
	}
	return changed, nil
}
