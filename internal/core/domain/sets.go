package domain

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// ClassSet is an unordered set of class names.
// A nil ClassSet is a valid empty set for reads.
type ClassSet map[ClassName]struct{}

// NewClassSet returns a set holding names.
func NewClassSet(names ...ClassName) ClassSet {
	s := make(ClassSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name and reports whether it was not present before.
func (s ClassSet) Add(name ClassName) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

// AddAll inserts every member of other.
func (s ClassSet) AddAll(other ClassSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Has reports whether name is a member.
func (s ClassSet) Has(name ClassName) bool {
	_, ok := s[name]
	return ok
}

// Remove deletes name from the set.
func (s ClassSet) Remove(name ClassName) {
	delete(s, name)
}

// All iterates the members in no particular order.
func (s ClassSet) All() iter.Seq[ClassName] {
	return maps.Keys(s)
}

// Clone returns an independent copy. Cloning a nil set yields an empty, writable set.
func (s ClassSet) Clone() ClassSet {
	c := make(ClassSet, len(s))
	c.AddAll(s)
	return c
}

// Sorted returns the members in lexical order.
func (s ClassSet) Sorted() []ClassName {
	return SortClassNames(slices.Collect(maps.Keys(s)))
}

// Strings returns the members as sorted strings.
func (s ClassSet) Strings() []string {
	sorted := s.Sorted()
	res := make([]string, len(sorted))
	for i, n := range sorted {
		res[i] = n.String()
	}
	return res
}

// ResourceSet is an unordered set of generated resources.
type ResourceSet map[GeneratedResource]struct{}

// NewResourceSet returns a set holding resources.
func NewResourceSet(resources ...GeneratedResource) ResourceSet {
	s := make(ResourceSet, len(resources))
	for _, r := range resources {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts r.
func (s ResourceSet) Add(r GeneratedResource) {
	s[r] = struct{}{}
}

// AddAll inserts every member of other.
func (s ResourceSet) AddAll(other ResourceSet) {
	for r := range other {
		s[r] = struct{}{}
	}
}

// Has reports whether r is a member.
func (s ResourceSet) Has(r GeneratedResource) bool {
	_, ok := s[r]
	return ok
}

// Clone returns an independent copy.
func (s ResourceSet) Clone() ResourceSet {
	c := make(ResourceSet, len(s))
	c.AddAll(s)
	return c
}

// Sorted returns the members ordered by location, then path.
func (s ResourceSet) Sorted() []GeneratedResource {
	res := slices.Collect(maps.Keys(s))
	slices.SortFunc(res, GeneratedResource.Compare)
	return res
}

// HashSet is an unordered set of constant origin hashes.
type HashSet map[ConstantOriginHash]struct{}

// NewHashSet returns a set holding hashes.
func NewHashSet(hashes ...ConstantOriginHash) HashSet {
	s := make(HashSet, len(hashes))
	for _, h := range hashes {
		s[h] = struct{}{}
	}
	return s
}

// Add inserts h.
func (s HashSet) Add(h ConstantOriginHash) {
	s[h] = struct{}{}
}

// Has reports whether h is a member.
func (s HashSet) Has(h ConstantOriginHash) bool {
	_, ok := s[h]
	return ok
}

// Sorted returns the members in ascending order.
func (s HashSet) Sorted() []ConstantOriginHash {
	res := slices.Collect(maps.Keys(s))
	slices.SortFunc(res, cmp.Compare[ConstantOriginHash])
	return res
}
