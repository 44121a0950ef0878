package config

// Recompfile represents the structure of the recomp.yaml configuration file.
// Pointer fields distinguish an absent key from its zero value.
type Recompfile struct {
	Version          string `yaml:"version"`
	CacheDir         string `yaml:"cacheDir"`
	Compression      string `yaml:"compression"`
	ConstantTracking *bool  `yaml:"constantTracking"`
	Parallelism      *int   `yaml:"parallelism"`
	LogFormat        string `yaml:"logFormat"`
}
