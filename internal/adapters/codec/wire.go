package codec

import (
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Payload layouts. Integer keys keep the encoding compact; class names are written once into a
// dictionary and referenced by position, as the constant origin index does in memory.

type graphWire struct {
	Classes []string         `cbor:"1,keyasint"`
	Entries []graphEntryWire `cbor:"2,keyasint"`
}

type graphEntryWire struct {
	Class      uint32   `cbor:"1,keyasint"`
	Accessible []uint32 `cbor:"2,keyasint,omitempty"`
	Private    []uint32 `cbor:"3,keyasint,omitempty"`
	Reason     *string  `cbor:"4,keyasint,omitempty"`
	Constants  []uint32 `cbor:"5,keyasint,omitempty"`
}

type indexWire struct {
	Classes []string            `cbor:"1,keyasint"`
	Indexes map[uint32][]uint32 `cbor:"2,keyasint"`
}

type annotationFactsWire struct {
	GeneratedTypesByOrigin                 map[string][]string       `cbor:"1,keyasint,omitempty"`
	AggregatedTypes                        []string                  `cbor:"2,keyasint,omitempty"`
	GeneratedTypesDependingOnAllOthers     []string                  `cbor:"3,keyasint,omitempty"`
	GeneratedResourcesByOrigin             map[string][]resourceWire `cbor:"4,keyasint,omitempty"`
	GeneratedResourcesDependingOnAllOthers []resourceWire            `cbor:"5,keyasint,omitempty"`
	FullRebuildCause                       string                    `cbor:"6,keyasint,omitempty"`
}

type resourceWire struct {
	Location uint8  `cbor:"1,keyasint"`
	Path     string `cbor:"2,keyasint"`
}

// dictionary assigns positions to class names in first-seen order.
type dictionary struct {
	names     []string
	positions map[domain.ClassName]uint32
}

func newDictionary() *dictionary {
	return &dictionary{positions: make(map[domain.ClassName]uint32)}
}

func (d *dictionary) add(name domain.ClassName) uint32 {
	if p, ok := d.positions[name]; ok {
		return p
	}
	p := uint32(len(d.names)) //nolint:gosec // class count fits in uint32
	d.positions[name] = p
	d.names = append(d.names, name.String())
	return p
}

func (d *dictionary) addAll(names []domain.ClassName) []uint32 {
	if len(names) == 0 {
		return nil
	}
	res := make([]uint32, len(names))
	for i, n := range names {
		res[i] = d.add(n)
	}
	return res
}

// lookup resolves positions read back from a snapshot against its dictionary.
func lookup(classes []domain.ClassName, positions []uint32) ([]domain.ClassName, error) {
	res := make([]domain.ClassName, len(positions))
	for i, p := range positions {
		if int(p) >= len(classes) {
			return nil, zerr.With(domain.ErrSnapshotCorrupt, "position", p)
		}
		res[i] = classes[p]
	}
	return res, nil
}

func graphToWire(g *domain.ClassDependencyGraph) graphWire {
	entries := g.Entries()
	dict := newDictionary()
	w := graphWire{Entries: make([]graphEntryWire, 0, len(entries))}
	for _, e := range entries {
		ew := graphEntryWire{
			Class:      dict.add(e.Class),
			Accessible: dict.addAll(e.AccessibleDependents),
			Private:    dict.addAll(e.PrivateDependents),
		}
		if e.DependencyToAll {
			reason := e.DependencyToAllReason
			ew.Reason = &reason
		}
		for _, h := range e.Constants {
			ew.Constants = append(ew.Constants, uint32(h))
		}
		w.Entries = append(w.Entries, ew)
	}
	w.Classes = dict.names
	return w
}

func graphFromWire(w *graphWire) (*domain.ClassDependencyGraph, error) {
	classes := domain.NewClassNames(w.Classes)
	entries := make([]domain.GraphEntry, 0, len(w.Entries))
	for _, ew := range w.Entries {
		subject, err := lookup(classes, []uint32{ew.Class})
		if err != nil {
			return nil, err
		}
		accessible, err := lookup(classes, ew.Accessible)
		if err != nil {
			return nil, err
		}
		private, err := lookup(classes, ew.Private)
		if err != nil {
			return nil, err
		}
		e := domain.GraphEntry{
			Class:                subject[0],
			AccessibleDependents: accessible,
			PrivateDependents:    private,
		}
		if ew.Reason != nil {
			e.DependencyToAll = true
			e.DependencyToAllReason = *ew.Reason
		}
		for _, h := range ew.Constants {
			e.Constants = append(e.Constants, domain.ConstantOriginHash(h))
		}
		entries = append(entries, e)
	}
	return domain.GraphFromEntries(entries), nil
}

func indexToWire(idx *domain.ConstantOriginIndex) indexWire {
	names := idx.ClassNames()
	w := indexWire{
		Classes: make([]string, len(names)),
		Indexes: make(map[uint32][]uint32),
	}
	for i, n := range names {
		w.Classes[i] = n.String()
	}
	for _, h := range idx.Hashes() {
		w.Indexes[uint32(h)] = idx.Positions(h)
	}
	return w
}

func indexFromWire(w *indexWire) (*domain.ConstantOriginIndex, error) {
	indexes := make(map[domain.ConstantOriginHash][]uint32, len(w.Indexes))
	for h, positions := range w.Indexes {
		indexes[domain.ConstantOriginHash(h)] = positions
	}
	idx, err := domain.NewConstantOriginIndex(domain.NewClassNames(w.Classes), indexes)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotCorrupt.Error())
	}
	return idx, nil
}

func resourcesToWire(set domain.ResourceSet) []resourceWire {
	if len(set) == 0 {
		return nil
	}
	sorted := set.Sorted()
	res := make([]resourceWire, len(sorted))
	for i, r := range sorted {
		res[i] = resourceWire{Location: uint8(r.Location), Path: r.Path}
	}
	return res
}

func resourcesFromWire(w []resourceWire) domain.ResourceSet {
	set := make(domain.ResourceSet, len(w))
	for _, r := range w {
		set.Add(domain.GeneratedResource{Location: domain.ResourceLocation(r.Location), Path: r.Path})
	}
	return set
}

func classesToWire(set domain.ClassSet) []string {
	if len(set) == 0 {
		return nil
	}
	return set.Strings()
}

func classesFromWire(names []string) domain.ClassSet {
	return domain.NewClassSet(domain.NewClassNames(names)...)
}

func annotationFactsToWire(f *domain.AnnotationProcessingFacts) annotationFactsWire {
	w := annotationFactsWire{
		AggregatedTypes:                        classesToWire(f.AggregatedTypes),
		GeneratedTypesDependingOnAllOthers:     classesToWire(f.GeneratedTypesDependingOnAllOthers),
		GeneratedResourcesDependingOnAllOthers: resourcesToWire(f.GeneratedResourcesDependingOnAllOthers),
		FullRebuildCause:                       f.FullRebuildCause,
	}
	if len(f.GeneratedTypesByOrigin) > 0 {
		w.GeneratedTypesByOrigin = make(map[string][]string, len(f.GeneratedTypesByOrigin))
		for origin, generated := range f.GeneratedTypesByOrigin {
			w.GeneratedTypesByOrigin[origin.String()] = classesToWire(generated)
		}
	}
	if len(f.GeneratedResourcesByOrigin) > 0 {
		w.GeneratedResourcesByOrigin = make(map[string][]resourceWire, len(f.GeneratedResourcesByOrigin))
		for origin, resources := range f.GeneratedResourcesByOrigin {
			w.GeneratedResourcesByOrigin[origin.String()] = resourcesToWire(resources)
		}
	}
	return w
}

func annotationFactsFromWire(w *annotationFactsWire) *domain.AnnotationProcessingFacts {
	f := &domain.AnnotationProcessingFacts{
		GeneratedTypesByOrigin:                 make(map[domain.ClassName]domain.ClassSet, len(w.GeneratedTypesByOrigin)),
		AggregatedTypes:                        classesFromWire(w.AggregatedTypes),
		GeneratedTypesDependingOnAllOthers:     classesFromWire(w.GeneratedTypesDependingOnAllOthers),
		GeneratedResourcesByOrigin:             make(map[domain.ClassName]domain.ResourceSet, len(w.GeneratedResourcesByOrigin)),
		GeneratedResourcesDependingOnAllOthers: resourcesFromWire(w.GeneratedResourcesDependingOnAllOthers),
		FullRebuildCause:                       w.FullRebuildCause,
	}
	for origin, generated := range w.GeneratedTypesByOrigin {
		f.GeneratedTypesByOrigin[domain.NewClassName(origin)] = classesFromWire(generated)
	}
	for origin, resources := range w.GeneratedResourcesByOrigin {
		f.GeneratedResourcesByOrigin[domain.NewClassName(origin)] = resourcesFromWire(resources)
	}
	return f
}
