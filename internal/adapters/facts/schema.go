package facts

// ClassFile represents the structure of one *.facts.yaml file.
type ClassFile struct {
	Class           string   `yaml:"class"`
	Accessible      []string `yaml:"accessible"`
	Private         []string `yaml:"private"`
	Constants       []string `yaml:"constants"`
	DependencyToAll string   `yaml:"dependencyToAll"`
}

// ConstantUsageFile maps each recompiled class to the constants it now inlines.
type ConstantUsageFile map[string][]string

// AnnotationReport represents what annotation processing recorded during a compile.
type AnnotationReport struct {
	GeneratedTypes               map[string][]string      `yaml:"generatedTypes"`
	AggregatedTypes              []string                 `yaml:"aggregatedTypes"`
	GeneratedTypesDependingOnAll []string                 `yaml:"generatedTypesDependingOnAll"`
	GeneratedResources           map[string][]ResourceDTO `yaml:"generatedResources"`
	ResourcesDependingOnAll      []ResourceDTO            `yaml:"resourcesDependingOnAll"`
	FullRebuildCause             string                   `yaml:"fullRebuildCause"`
}

// ResourceDTO is a generated resource as written in the annotation report.
type ResourceDTO struct {
	Location string `yaml:"location"`
	Path     string `yaml:"path"`
}
