package domain

import "path/filepath"

const (
	// RecompDirName is the name of the internal workspace directory.
	RecompDirName = ".recomp"

	// CacheDirName is the name of the snapshot cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "recomp.yaml"

	// GraphFileName is the name of the class dependency graph snapshot.
	GraphFileName = "class-graph.bin"

	// IndexFileName is the name of the constant origin index snapshot.
	IndexFileName = "constant-index.bin"

	// AnnotationFactsFileName is the name of the annotation processing facts snapshot.
	AnnotationFactsFileName = "annotation-facts.bin"

	// FactsFileSuffix is the suffix of per-class facts files.
	FactsFileSuffix = ".facts.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path for the snapshot cache.
// It joins .recomp and cache.
func DefaultCachePath() string {
	return filepath.Join(RecompDirName, CacheDirName)
}
