package domain

// AnnotationProcessingFacts is what the annotation processing subsystem recorded during the
// previous compile. The resolver only reads it.
type AnnotationProcessingFacts struct {
	// GeneratedTypesByOrigin maps an originating type to the types generated from it.
	GeneratedTypesByOrigin map[ClassName]ClassSet
	// AggregatedTypes are inputs of aggregating processors.
	AggregatedTypes ClassSet
	// GeneratedTypesDependingOnAllOthers are outputs of aggregating processors.
	GeneratedTypesDependingOnAllOthers ClassSet
	// GeneratedResourcesByOrigin maps an originating type to the resources generated from it.
	GeneratedResourcesByOrigin map[ClassName]ResourceSet
	// GeneratedResourcesDependingOnAllOthers are resources written by aggregating processors.
	GeneratedResourcesDependingOnAllOthers ResourceSet
	// FullRebuildCause is set when a processor could not run incrementally.
	FullRebuildCause string
}

// ParticipatesInClassGeneration reports whether a change to class may change generated types.
func (f *AnnotationProcessingFacts) ParticipatesInClassGeneration(class ClassName) bool {
	if f == nil {
		return false
	}
	_, origin := f.GeneratedTypesByOrigin[class]
	return origin || f.AggregatedTypes.Has(class)
}

// ParticipatesInResourceGeneration reports whether a change to class may change generated resources.
func (f *AnnotationProcessingFacts) ParticipatesInResourceGeneration(class ClassName) bool {
	if f == nil {
		return false
	}
	_, origin := f.GeneratedResourcesByOrigin[class]
	return origin || f.AggregatedTypes.Has(class)
}

// OriginOf returns the type that class was generated from, or class itself when it is not
// a generated type.
func (f *AnnotationProcessingFacts) OriginOf(class ClassName) ClassName {
	if f == nil {
		return class
	}
	for origin, generated := range f.GeneratedTypesByOrigin {
		if generated.Has(class) {
			return origin
		}
	}
	return class
}

// IsEmpty reports whether no annotation processing facts were recorded.
func (f *AnnotationProcessingFacts) IsEmpty() bool {
	return f == nil || (len(f.GeneratedTypesByOrigin) == 0 &&
		len(f.AggregatedTypes) == 0 &&
		len(f.GeneratedTypesDependingOnAllOthers) == 0 &&
		len(f.GeneratedResourcesByOrigin) == 0 &&
		len(f.GeneratedResourcesDependingOnAllOthers) == 0 &&
		f.FullRebuildCause == "")
}
