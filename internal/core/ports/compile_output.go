package ports

import "go.trai.ch/recomp/internal/core/domain"

// ConstantUsageReader reads the constant usage recorded by the compiler for the classes it
// just compiled.
//
//go:generate mockgen -source=compile_output.go -destination=mocks/mock_compile_output.go -package=mocks
type ConstantUsageReader interface {
	// ReadConstantUsage returns, for every compiled class, the constants it inlined.
	// A class mapped to an empty slice no longer inlines any constant.
	ReadConstantUsage(path string) (map[domain.ClassName][]domain.ConstantRef, error)
}

// AnnotationFactsReader reads what annotation processing generated during a compile.
type AnnotationFactsReader interface {
	// ReadAnnotationFacts parses the annotation processing report at path.
	ReadAnnotationFacts(path string) (*domain.AnnotationProcessingFacts, error)
}
