package domain

import (
	"slices"
)

// ClassDependencyGraph records, for every class, the classes that directly depend on it and
// the constants it inlined. A graph is assembled once per compile and never mutated after
// it is handed out; UpdateGraph produces a new graph.
type ClassDependencyGraph struct {
	dependents map[ClassName]*directDependents
	reasons    map[ClassName]string
	constants  map[ClassName]HashSet
}

type directDependents struct {
	accessible ClassSet
	private    ClassSet
}

// GraphEntry is the flattened, ordered view of one class in the graph.
type GraphEntry struct {
	Class                 ClassName
	AccessibleDependents  []ClassName
	PrivateDependents     []ClassName
	DependencyToAll       bool
	DependencyToAllReason string
	Constants             []ConstantOriginHash
}

func newClassDependencyGraph() *ClassDependencyGraph {
	return &ClassDependencyGraph{
		dependents: make(map[ClassName]*directDependents),
		reasons:    make(map[ClassName]string),
		constants:  make(map[ClassName]HashSet),
	}
}

// NewClassDependencyGraph returns an empty graph.
func NewClassDependencyGraph() *ClassDependencyGraph {
	return newClassDependencyGraph()
}

// BuildGraph assembles a graph from the facts of a full compile.
func BuildGraph(facts []ClassFacts) *ClassDependencyGraph {
	return UpdateGraph(nil, facts, nil)
}

// UpdateGraph returns a new graph where every class in fresh or removed has been forgotten
// and fresh has been folded in. Edges contributed by classes outside both sets are kept.
// previous may be nil.
func UpdateGraph(previous *ClassDependencyGraph, fresh []ClassFacts, removed ClassSet) *ClassDependencyGraph {
	g := newClassDependencyGraph()

	if previous != nil {
		touched := make(ClassSet, len(fresh)+len(removed))
		for _, f := range fresh {
			touched.Add(f.Name)
		}
		touched.AddAll(removed)

		for class, deps := range previous.dependents {
			if removed.Has(class) {
				continue
			}
			for dependent := range deps.accessible {
				if !touched.Has(dependent) {
					g.addAccessible(class, dependent)
				}
			}
			for dependent := range deps.private {
				if !touched.Has(dependent) {
					g.addPrivate(class, dependent)
				}
			}
		}
		for class, reason := range previous.reasons {
			if !touched.Has(class) {
				g.reasons[class] = reason
			}
		}
		for class, hashes := range previous.constants {
			if !touched.Has(class) {
				g.constants[class] = hashes
			}
		}
	}

	for i := range fresh {
		g.addFacts(&fresh[i])
	}
	return g
}

// GraphFromEntries rebuilds a graph from its flattened form.
func GraphFromEntries(entries []GraphEntry) *ClassDependencyGraph {
	g := newClassDependencyGraph()
	for _, e := range entries {
		for _, d := range e.AccessibleDependents {
			g.addAccessible(e.Class, d)
		}
		for _, d := range e.PrivateDependents {
			g.addPrivate(e.Class, d)
		}
		if e.DependencyToAll {
			g.reasons[e.Class] = e.DependencyToAllReason
		}
		if len(e.Constants) > 0 {
			g.constants[e.Class] = NewHashSet(e.Constants...)
		}
	}
	return g
}

func (g *ClassDependencyGraph) addFacts(f *ClassFacts) {
	for _, dep := range f.AccessibleDependencies {
		g.addAccessible(dep, f.Name)
	}
	for _, dep := range f.PrivateDependencies {
		g.addPrivate(dep, f.Name)
	}
	if f.DependencyToAllReason != "" {
		g.reasons[f.Name] = f.DependencyToAllReason
	}
	if len(f.Constants) > 0 {
		g.constants[f.Name] = NewHashSet(f.Constants...)
	}
}

func (g *ClassDependencyGraph) entry(class ClassName) *directDependents {
	e, ok := g.dependents[class]
	if !ok {
		e = &directDependents{accessible: make(ClassSet), private: make(ClassSet)}
		g.dependents[class] = e
	}
	return e
}

// addAccessible records dependent as an accessible dependent of class.
// An accessible edge supersedes a private one between the same pair.
func (g *ClassDependencyGraph) addAccessible(class, dependent ClassName) {
	if class == dependent {
		return
	}
	e := g.entry(class)
	e.accessible.Add(dependent)
	e.private.Remove(dependent)
}

func (g *ClassDependencyGraph) addPrivate(class, dependent ClassName) {
	if class == dependent {
		return
	}
	e := g.entry(class)
	if !e.accessible.Has(dependent) {
		e.private.Add(dependent)
	}
}

// Dependents returns the direct dependents of class. Classes the graph does not know
// resolve to the empty set.
func (g *ClassDependencyGraph) Dependents(class ClassName) DependentsSet {
	if reason, ok := g.reasons[class]; ok {
		return DependencyToAll(reason)
	}
	e, ok := g.dependents[class]
	if !ok {
		return EmptyDependents()
	}
	return NewDependents(e.private, e.accessible, nil)
}

// IsDependencyToAll reports whether any change to class forces a full rebuild.
func (g *ClassDependencyGraph) IsDependencyToAll(class ClassName) bool {
	_, ok := g.reasons[class]
	return ok
}

// Constants returns the origin hashes of the constants class inlined.
func (g *ClassDependencyGraph) Constants(class ClassName) HashSet {
	return g.constants[class]
}

// Classes returns every class the graph mentions as a subject, in lexical order.
func (g *ClassDependencyGraph) Classes() []ClassName {
	all := make(ClassSet, len(g.dependents)+len(g.reasons)+len(g.constants))
	for c := range g.dependents {
		all.Add(c)
	}
	for c := range g.reasons {
		all.Add(c)
	}
	for c := range g.constants {
		all.Add(c)
	}
	return all.Sorted()
}

// Len returns the number of classes the graph mentions as a subject.
func (g *ClassDependencyGraph) Len() int {
	return len(g.Classes())
}

// Entries flattens the graph into a deterministic, ordered form.
func (g *ClassDependencyGraph) Entries() []GraphEntry {
	classes := g.Classes()
	entries := make([]GraphEntry, 0, len(classes))
	for _, c := range classes {
		e := GraphEntry{Class: c}
		if deps, ok := g.dependents[c]; ok {
			e.AccessibleDependents = deps.accessible.Sorted()
			e.PrivateDependents = deps.private.Sorted()
		}
		e.DependencyToAllReason, e.DependencyToAll = g.reasons[c]
		if hashes, ok := g.constants[c]; ok {
			e.Constants = hashes.Sorted()
		}
		entries = append(entries, e)
	}
	return entries
}

// Equal reports whether both graphs hold the same edges, reasons and constants.
func (g *ClassDependencyGraph) Equal(other *ClassDependencyGraph) bool {
	return slices.EqualFunc(g.Entries(), other.Entries(), func(a, b GraphEntry) bool {
		return a.Class == b.Class &&
			slices.Equal(a.AccessibleDependents, b.AccessibleDependents) &&
			slices.Equal(a.PrivateDependents, b.PrivateDependents) &&
			a.DependencyToAll == b.DependencyToAll &&
			a.DependencyToAllReason == b.DependencyToAllReason &&
			slices.Equal(a.Constants, b.Constants)
	})
}
