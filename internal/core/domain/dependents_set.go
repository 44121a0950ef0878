package domain

import (
	"fmt"
	"strings"
)

// DependentsKind discriminates the three shapes of a DependentsSet.
type DependentsKind uint8

const (
	// KindEmpty means there are no known dependents.
	KindEmpty DependentsKind = iota
	// KindDependents means the dependents are the finite sets carried by the value.
	KindDependents
	// KindDependencyToAll means precision was lost and everything must be rebuilt.
	KindDependencyToAll
)

// String returns the kind's name.
func (k DependentsKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDependents:
		return "dependents"
	case KindDependencyToAll:
		return "dependency-to-all"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// DependentsSet is the answer to "who depends on this".
// The zero value is the empty set. Values are immutable once built: the sets returned by
// the accessors are shared and must not be modified.
type DependentsSet struct {
	kind       DependentsKind
	private    ClassSet
	accessible ClassSet
	resources  ResourceSet
	cause      string
}

// EmptyDependents returns the set with no dependents.
func EmptyDependents() DependentsSet {
	return DependentsSet{}
}

// NewDependents builds a finite dependents set, taking ownership of the given sets.
// It collapses to the empty set when all three are empty.
func NewDependents(private, accessible ClassSet, resources ResourceSet) DependentsSet {
	if len(private) == 0 && len(accessible) == 0 && len(resources) == 0 {
		return EmptyDependents()
	}
	return DependentsSet{
		kind:       KindDependents,
		private:    private,
		accessible: accessible,
		resources:  resources,
	}
}

// DependencyToAll returns the absorbing "rebuild everything" marker.
// cause is diagnostic only and may be empty.
func DependencyToAll(cause string) DependentsSet {
	return DependentsSet{kind: KindDependencyToAll, cause: cause}
}

// Kind returns which of the three shapes d has.
func (d DependentsSet) Kind() DependentsKind {
	return d.kind
}

// IsEmpty reports whether d is the empty set.
func (d DependentsSet) IsEmpty() bool {
	return d.kind == KindEmpty
}

// IsDependencyToAll reports whether d demands a full rebuild.
func (d DependentsSet) IsDependencyToAll() bool {
	return d.kind == KindDependencyToAll
}

// HasDependentClasses reports whether d names at least one dependent class.
func (d DependentsSet) HasDependentClasses() bool {
	return len(d.private) > 0 || len(d.accessible) > 0
}

// PrivateDependents returns classes that use the subject without re-exporting it.
func (d DependentsSet) PrivateDependents() ClassSet {
	return d.private
}

// AccessibleDependents returns classes that expose the subject in their own API.
func (d DependentsSet) AccessibleDependents() ClassSet {
	return d.accessible
}

// AllDependents returns the union of private and accessible dependents as a new set.
func (d DependentsSet) AllDependents() ClassSet {
	all := make(ClassSet, len(d.private)+len(d.accessible))
	all.AddAll(d.private)
	all.AddAll(d.accessible)
	return all
}

// Resources returns the generated resources that must be regenerated.
func (d DependentsSet) Resources() ResourceSet {
	return d.resources
}

// Cause returns the diagnostic attached to a DependencyToAll value.
func (d DependentsSet) Cause() string {
	return d.cause
}

// Union combines d and other. DependencyToAll absorbs everything; of two DependencyToAll
// values the first non-empty cause is kept. Neither operand is modified.
func (d DependentsSet) Union(other DependentsSet) DependentsSet {
	switch {
	case d.kind == KindDependencyToAll:
		if d.cause == "" && other.kind == KindDependencyToAll {
			return other
		}
		return d
	case other.kind == KindDependencyToAll:
		return other
	case d.kind == KindEmpty:
		return other
	case other.kind == KindEmpty:
		return d
	}

	private := d.private.Clone()
	private.AddAll(other.private)
	accessible := d.accessible.Clone()
	accessible.AddAll(other.accessible)
	resources := d.resources.Clone()
	resources.AddAll(other.resources)
	return NewDependents(private, accessible, resources)
}

// UnionAll folds sets left to right with Union.
func UnionAll(sets ...DependentsSet) DependentsSet {
	res := EmptyDependents()
	for _, s := range sets {
		res = res.Union(s)
		if res.IsDependencyToAll() && res.cause != "" {
			return res
		}
	}
	return res
}

// String renders d for diagnostics.
func (d DependentsSet) String() string {
	switch d.kind {
	case KindEmpty:
		return "Empty"
	case KindDependencyToAll:
		if d.cause == "" {
			return "DependencyToAll"
		}
		return fmt.Sprintf("DependencyToAll(%s)", d.cause)
	default:
		resources := d.resources.Sorted()
		names := make([]string, len(resources))
		for i, r := range resources {
			names[i] = r.String()
		}
		return fmt.Sprintf("Dependents{private: [%s], accessible: [%s], resources: [%s]}",
			strings.Join(d.private.Strings(), ", "),
			strings.Join(d.accessible.Strings(), ", "),
			strings.Join(names, ", "),
		)
	}
}
