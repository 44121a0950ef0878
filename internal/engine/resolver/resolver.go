// Package resolver answers which classes and generated resources must be recompiled when a set
// of classes changed since the previous compile.
package resolver

import (
	"iter"
	"slices"

	"go.trai.ch/recomp/internal/core/domain"
)

// ConstantTrackingUnavailable is the cause reported when constants changed but the compile that
// produced the constant index could not record constant usage.
const ConstantTrackingUnavailable = "constant usage was not tracked for the previous compile"

// Resolver composes the class dependency graph, the constant origin index and the annotation
// processing facts of the previous compile. It holds no mutable state; queries may run
// concurrently.
type Resolver struct {
	graph            *domain.ClassDependencyGraph
	index            *domain.ConstantOriginIndex
	facts            *domain.AnnotationProcessingFacts
	constantTracking bool

	// classDepsFromProcessing links every generated type to its origin and back.
	classDepsFromProcessing    map[domain.ClassName]domain.ClassSet
	resourceDepsFromProcessing map[domain.ClassName]domain.ResourceSet
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConstantIndex supplies the constant origin index and marks constant tracking available.
func WithConstantIndex(index *domain.ConstantOriginIndex) Option {
	return func(r *Resolver) {
		r.index = index
		r.constantTracking = true
	}
}

// WithConstantTracking overrides whether constant usage was tracked. Without tracking, any query
// with changed constants escalates to DependencyToAll.
func WithConstantTracking(available bool) Option {
	return func(r *Resolver) {
		r.constantTracking = available
	}
}

// WithAnnotationFacts supplies what annotation processing generated in the previous compile.
func WithAnnotationFacts(facts *domain.AnnotationProcessingFacts) Option {
	return func(r *Resolver) {
		r.facts = facts
	}
}

// New creates a Resolver over graph. A nil graph is treated as empty.
func New(graph *domain.ClassDependencyGraph, opts ...Option) *Resolver {
	if graph == nil {
		graph = domain.NewClassDependencyGraph()
	}
	r := &Resolver{graph: graph}
	for _, opt := range opts {
		opt(r)
	}
	r.indexAnnotationFacts()
	return r
}

// WithFacts returns a resolver over the same graph and index with different annotation
// processing facts and constant tracking availability.
func (r *Resolver) WithFacts(facts *domain.AnnotationProcessingFacts, constantTracking bool) *Resolver {
	return New(r.graph,
		WithConstantIndex(r.index),
		WithConstantTracking(constantTracking),
		WithAnnotationFacts(facts),
	)
}

func (r *Resolver) indexAnnotationFacts() {
	r.classDepsFromProcessing = make(map[domain.ClassName]domain.ClassSet)
	r.resourceDepsFromProcessing = make(map[domain.ClassName]domain.ResourceSet)
	if r.facts == nil {
		return
	}

	link := func(from, to domain.ClassName) {
		set, ok := r.classDepsFromProcessing[from]
		if !ok {
			set = make(domain.ClassSet)
			r.classDepsFromProcessing[from] = set
		}
		set.Add(to)
	}
	for origin, generated := range r.facts.GeneratedTypesByOrigin {
		for g := range generated {
			link(origin, g)
			link(g, origin)
		}
	}
	for origin, resources := range r.facts.GeneratedResourcesByOrigin {
		if len(resources) > 0 {
			r.resourceDepsFromProcessing[origin] = resources
		}
	}
}

// DependentsOf returns everything that must be recompiled when class changed. changedConstants
// holds the origin hashes of constants whose value changed.
//
//nolint:cyclop // mirrors the order of checks of the algorithm
func (r *Resolver) DependentsOf(class domain.ClassName, changedConstants domain.HashSet) domain.DependentsSet {
	if r.facts != nil && r.facts.FullRebuildCause != "" {
		return domain.DependencyToAll(r.facts.FullRebuildCause)
	}

	deps := r.dependents(class)
	if deps.IsDependencyToAll() {
		return deps
	}
	if len(changedConstants) > 0 && !r.constantTracking {
		return domain.DependencyToAll(ConstantTrackingUnavailable)
	}

	var dependingOnAll domain.ClassSet
	if r.facts.ParticipatesInClassGeneration(class) {
		dependingOnAll = r.facts.GeneratedTypesDependingOnAllOthers
	}
	var resourcesDependingOnAll domain.ResourceSet
	if r.facts.ParticipatesInResourceGeneration(class) {
		resourcesDependingOnAll = r.facts.GeneratedResourcesDependingOnAllOthers
	}
	constantDependents := r.constantDependents(class)

	if !deps.HasDependentClasses() &&
		len(dependingOnAll) == 0 &&
		len(resourcesDependingOnAll) == 0 &&
		len(constantDependents) == 0 {
		return deps
	}

	t := newTraversal(r)
	t.resources.AddAll(deps.Resources())
	t.resources.AddAll(resourcesDependingOnAll)

	// Each source is walked with its own visited set.
	groups := []struct{ private, accessible domain.ClassSet }{
		{deps.PrivateDependents(), deps.AccessibleDependents()},
		{nil, dependingOnAll},
		{nil, constantDependents},
	}
	for _, g := range groups {
		if escalation, ok := t.walk(g.private, g.accessible); !ok {
			return escalation
		}
	}

	t.private.Remove(class)
	t.accessible.Remove(class)
	return domain.NewDependents(t.private, t.accessible, t.resources)
}

// DependentsOfMany unions the dependents of every class. It stops at the first class whose
// dependents are DependencyToAll and returns that value.
func (r *Resolver) DependentsOfMany(classes iter.Seq[domain.ClassName], changedConstants domain.HashSet) domain.DependentsSet {
	private := make(domain.ClassSet)
	accessible := make(domain.ClassSet)
	resources := make(domain.ResourceSet)

	for class := range classes {
		d := r.DependentsOf(class, changedConstants)
		if d.IsDependencyToAll() {
			return d
		}
		private.AddAll(d.PrivateDependents())
		accessible.AddAll(d.AccessibleDependents())
		resources.AddAll(d.Resources())
	}
	return domain.NewDependents(private, accessible, resources)
}

// TypesToReprocess returns the origins of the types aggregating processors consumed. A type that
// was itself generated is mapped back to the type it was generated from.
func (r *Resolver) TypesToReprocess() domain.ClassSet {
	res := make(domain.ClassSet)
	if r.facts == nil {
		return res
	}
	for t := range r.facts.AggregatedTypes {
		res.Add(r.facts.OriginOf(t))
	}
	return res
}

// IsDependencyToAll reports whether a change to class forces a full rebuild on its own.
func (r *Resolver) IsDependencyToAll(class domain.ClassName) bool {
	return r.graph.IsDependencyToAll(class)
}

// ConstantsOf returns the origin hashes of the constants class inlined.
func (r *Resolver) ConstantsOf(class domain.ClassName) domain.HashSet {
	return r.graph.Constants(class)
}

// dependents returns the direct dependents of class: its graph entry widened by the classes
// and resources annotation processing links to it and by the classes that inlined one of its
// constants.
func (r *Resolver) dependents(class domain.ClassName) domain.DependentsSet {
	deps := r.graph.Dependents(class)
	if deps.IsDependencyToAll() {
		return deps
	}

	fromProcessing := r.classDepsFromProcessing[class]
	resources := r.resourceDepsFromProcessing[class]
	fromConstants := r.constantDependents(class)
	if len(fromProcessing) == 0 && len(resources) == 0 && len(fromConstants) == 0 {
		return deps
	}

	accessible := deps.AccessibleDependents().Clone()
	accessible.AddAll(fromProcessing)
	accessible.AddAll(fromConstants)
	allResources := deps.Resources().Clone()
	allResources.AddAll(resources)
	return domain.NewDependents(deps.PrivateDependents(), accessible, allResources)
}

func (r *Resolver) constantDependents(class domain.ClassName) domain.ClassSet {
	if !r.constantTracking {
		return nil
	}
	return r.index.DependentsOf(class.OriginHash())
}

// traversal accumulates the result of one DependentsOf query.
type traversal struct {
	r          *Resolver
	private    domain.ClassSet
	accessible domain.ClassSet
	resources  domain.ResourceSet
}

func newTraversal(r *Resolver) *traversal {
	return &traversal{
		r:          r,
		private:    make(domain.ClassSet),
		accessible: make(domain.ClassSet),
		resources:  make(domain.ResourceSet),
	}
}

// walk records private as single-hop dependents and expands accessible breadth first.
// It returns false together with the escalation when an accessible dependent resolves to
// DependencyToAll.
func (t *traversal) walk(private, accessible domain.ClassSet) (domain.DependentsSet, bool) {
	visited := make(domain.ClassSet)

	for _, c := range private.Sorted() {
		if !visited.Add(c) {
			continue
		}
		t.private.Add(c)
		if d := t.r.dependents(c); !d.IsDependencyToAll() {
			t.resources.AddAll(d.Resources())
		}
	}

	queue := accessible.Sorted()
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if !visited.Add(c) {
			continue
		}
		t.accessible.Add(c)

		d := t.r.dependents(c)
		if d.IsDependencyToAll() {
			return d, false
		}
		t.resources.AddAll(d.Resources())
		queue = slices.AppendSeq(queue, d.AccessibleDependents().All())
	}
	return domain.EmptyDependents(), true
}
