// Package merger folds the constant usage of a partial compile into the constant origin index
// of the previous compile.
package merger

import "go.trai.ch/recomp/internal/core/domain"

// Merge returns a new index in which every class of fresh carries exactly the constants it
// inlined in this compile, and every removed class is forgotten. Classes in neither set keep
// their previous associations. previous may be nil on a first build and is never modified.
//
// Dictionary positions of the returned index are assigned from scratch; they are not related
// to the positions of previous.
func Merge(
	fresh map[domain.ClassName][]domain.ConstantRef,
	previous *domain.ConstantOriginIndex,
	removed domain.ClassSet,
) *domain.ConstantOriginIndex {
	classConstants := previous.ClassConstants()

	for class, refs := range fresh {
		if len(refs) == 0 || removed.Has(class) {
			delete(classConstants, class)
			continue
		}
		hashes := make(domain.HashSet, len(refs))
		for _, ref := range refs {
			hashes.Add(ref.OriginHash())
		}
		classConstants[class] = hashes
	}

	// Removed classes are usually absent from fresh.
	for class := range removed {
		delete(classConstants, class)
	}

	return domain.IndexFromClassConstants(classConstants)
}
