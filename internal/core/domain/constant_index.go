package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// ConstantOriginIndex maps a constant origin hash to the classes that inlined a constant with
// that origin. Class names are stored once in a dictionary and referenced by position.
// Positions are only meaningful inside one index; every rebuild numbers classes from 0.
type ConstantOriginIndex struct {
	classNames []ClassName
	indexes    map[ConstantOriginHash][]uint32
}

// EmptyConstantOriginIndex returns an index with no entries.
func EmptyConstantOriginIndex() *ConstantOriginIndex {
	return &ConstantOriginIndex{indexes: make(map[ConstantOriginHash][]uint32)}
}

// NewConstantOriginIndex builds an index from a dictionary and hash-to-position lists, as read
// back from a snapshot. It rejects positions that fall outside the dictionary.
func NewConstantOriginIndex(classNames []ClassName, indexes map[ConstantOriginHash][]uint32) (*ConstantOriginIndex, error) {
	for hash, positions := range indexes {
		for _, p := range positions {
			if int(p) >= len(classNames) {
				return nil, zerr.With(zerr.With(ErrIndexOutOfRange, "hash", uint32(hash)), "position", p)
			}
		}
	}
	if indexes == nil {
		indexes = make(map[ConstantOriginHash][]uint32)
	}
	return &ConstantOriginIndex{classNames: classNames, indexes: indexes}, nil
}

// IndexFromClassConstants inverts a class-to-constants mapping. Classes are numbered in lexical
// order so that equal mappings produce identical indexes.
func IndexFromClassConstants(classConstants map[ClassName]HashSet) *ConstantOriginIndex {
	classes := SortClassNames(slices.Collect(maps.Keys(classConstants)))
	idx := &ConstantOriginIndex{
		classNames: make([]ClassName, 0, len(classes)),
		indexes:    make(map[ConstantOriginHash][]uint32),
	}
	for _, class := range classes {
		hashes := classConstants[class]
		if len(hashes) == 0 {
			continue
		}
		position := uint32(len(idx.classNames)) //nolint:gosec // class count fits in uint32
		idx.classNames = append(idx.classNames, class)
		for hash := range hashes {
			idx.indexes[hash] = append(idx.indexes[hash], position)
		}
	}
	return idx
}

// DependentsOf returns the classes that inlined a constant whose origin hashes to hash.
// Unknown hashes yield an empty set.
func (x *ConstantOriginIndex) DependentsOf(hash ConstantOriginHash) ClassSet {
	if x == nil {
		return nil
	}
	positions := x.indexes[hash]
	if len(positions) == 0 {
		return nil
	}
	res := make(ClassSet, len(positions))
	for _, p := range positions {
		res.Add(x.className(p))
	}
	return res
}

// className resolves a dictionary position. A position without a dictionary entry means the
// index was built wrong; that is a programming error and panics.
func (x *ConstantOriginIndex) className(position uint32) ClassName {
	if int(position) >= len(x.classNames) {
		panic(zerr.With(ErrIndexOutOfRange, "position", position))
	}
	return x.classNames[position]
}

// ClassConstants inverts the index back into a class-to-constants mapping.
func (x *ConstantOriginIndex) ClassConstants() map[ClassName]HashSet {
	res := make(map[ClassName]HashSet)
	if x == nil {
		return res
	}
	for hash, positions := range x.indexes {
		for _, p := range positions {
			class := x.className(p)
			hashes, ok := res[class]
			if !ok {
				hashes = make(HashSet)
				res[class] = hashes
			}
			hashes.Add(hash)
		}
	}
	return res
}

// ClassNames returns the dictionary. The slice is shared and must not be modified.
func (x *ConstantOriginIndex) ClassNames() []ClassName {
	if x == nil {
		return nil
	}
	return x.classNames
}

// Hashes returns every indexed hash in ascending order.
func (x *ConstantOriginIndex) Hashes() []ConstantOriginHash {
	if x == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(x.indexes))
}

// Positions returns the dictionary positions recorded under hash, ascending.
func (x *ConstantOriginIndex) Positions(hash ConstantOriginHash) []uint32 {
	if x == nil {
		return nil
	}
	positions := slices.Clone(x.indexes[hash])
	slices.Sort(positions)
	return positions
}

// Len returns the number of classes in the dictionary.
func (x *ConstantOriginIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.classNames)
}
