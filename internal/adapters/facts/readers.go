package facts

import (
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// ConstantUsageReader implements ports.ConstantUsageReader.
type ConstantUsageReader struct{}

// NewConstantUsageReader creates a new ConstantUsageReader.
func NewConstantUsageReader() *ConstantUsageReader {
	return &ConstantUsageReader{}
}

// ReadConstantUsage reads the constants each recompiled class inlines. A class mapped to an
// empty list no longer uses any constant.
func (r *ConstantUsageReader) ReadConstantUsage(path string) (map[domain.ClassName][]domain.ConstantRef, error) {
	var file ConstantUsageFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	usage := make(map[domain.ClassName][]domain.ConstantRef, len(file))
	for class, refs := range file {
		constants, err := parseConstants(refs)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "class", class)
		}
		usage[domain.NewClassName(class)] = constants
	}
	return usage, nil
}

// AnnotationFactsReader implements ports.AnnotationFactsReader.
type AnnotationFactsReader struct{}

// NewAnnotationFactsReader creates a new AnnotationFactsReader.
func NewAnnotationFactsReader() *AnnotationFactsReader {
	return &AnnotationFactsReader{}
}

// ReadAnnotationFacts reads an annotation processing report.
func (r *AnnotationFactsReader) ReadAnnotationFacts(path string) (*domain.AnnotationProcessingFacts, error) {
	var report AnnotationReport
	if err := readAndUnmarshalYAML(path, &report); err != nil {
		return nil, err
	}

	facts := &domain.AnnotationProcessingFacts{
		GeneratedTypesByOrigin:             make(map[domain.ClassName]domain.ClassSet, len(report.GeneratedTypes)),
		AggregatedTypes:                    classSet(report.AggregatedTypes),
		GeneratedTypesDependingOnAllOthers: classSet(report.GeneratedTypesDependingOnAll),
		GeneratedResourcesByOrigin:         make(map[domain.ClassName]domain.ResourceSet, len(report.GeneratedResources)),
		FullRebuildCause:                   report.FullRebuildCause,
	}
	for origin, generated := range report.GeneratedTypes {
		facts.GeneratedTypesByOrigin[domain.NewClassName(origin)] = classSet(generated)
	}
	for origin, dtos := range report.GeneratedResources {
		resources, err := resourceSet(dtos)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "origin", origin)
		}
		facts.GeneratedResourcesByOrigin[domain.NewClassName(origin)] = resources
	}

	resources, err := resourceSet(report.ResourcesDependingOnAll)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	facts.GeneratedResourcesDependingOnAllOthers = resources
	return facts, nil
}

func classSet(names []string) domain.ClassSet {
	return domain.NewClassSet(domain.NewClassNames(names)...)
}

func resourceSet(dtos []ResourceDTO) (domain.ResourceSet, error) {
	set := make(domain.ResourceSet, len(dtos))
	for _, dto := range dtos {
		loc, err := domain.ParseResourceLocation(dto.Location)
		if err != nil {
			return nil, err
		}
		set.Add(domain.GeneratedResource{Location: loc, Path: dto.Path})
	}
	return set, nil
}
