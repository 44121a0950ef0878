// Package snapshot persists the class dependency graph, the constant origin index and the
// annotation processing facts of the previous compile as one file each.
package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/recomp/internal/adapters/codec"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore on the local filesystem.
type Store struct{}

// NewStore creates a new SnapshotStore.
func NewStore() *Store {
	return &Store{}
}

// LoadGraph reads the class dependency graph.
func (s *Store) LoadGraph(loc domain.CacheLocation) (*domain.ClassDependencyGraph, error) {
	return load(loc, domain.GraphFileName, codec.DecodeGraph)
}

// SaveGraph replaces the class dependency graph.
func (s *Store) SaveGraph(loc domain.CacheLocation, graph *domain.ClassDependencyGraph) error {
	data, err := codec.EncodeGraph(graph, loc.Compression)
	if err != nil {
		return err
	}
	return write(loc, domain.GraphFileName, data)
}

// LoadIndex reads the constant origin index.
func (s *Store) LoadIndex(loc domain.CacheLocation) (*domain.ConstantOriginIndex, error) {
	return load(loc, domain.IndexFileName, codec.DecodeIndex)
}

// SaveIndex replaces the constant origin index.
func (s *Store) SaveIndex(loc domain.CacheLocation, index *domain.ConstantOriginIndex) error {
	data, err := codec.EncodeIndex(index, loc.Compression)
	if err != nil {
		return err
	}
	return write(loc, domain.IndexFileName, data)
}

// LoadAnnotationFacts reads the annotation processing facts.
func (s *Store) LoadAnnotationFacts(loc domain.CacheLocation) (*domain.AnnotationProcessingFacts, error) {
	return load(loc, domain.AnnotationFactsFileName, codec.DecodeAnnotationFacts)
}

// SaveAnnotationFacts replaces the annotation processing facts.
func (s *Store) SaveAnnotationFacts(loc domain.CacheLocation, facts *domain.AnnotationProcessingFacts) error {
	data, err := codec.EncodeAnnotationFacts(facts, loc.Compression)
	if err != nil {
		return err
	}
	return write(loc, domain.AnnotationFactsFileName, data)
}

// Clean removes the cache directory and everything in it.
func (s *Store) Clean(loc domain.CacheLocation) error {
	if err := os.RemoveAll(loc.Dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "dir", loc.Dir)
	}
	return nil
}

func load[T any](loc domain.CacheLocation, name string, decode func([]byte) (*T, error)) (*T, error) {
	path := filepath.Join(loc.Dir, name)
	//nolint:gosec // Path is constructed from the configured cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	v, err := decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return v, nil
}

// write replaces name atomically so that a crash never leaves a partial snapshot behind.
func write(loc domain.CacheLocation, name string, data []byte) error {
	if err := os.MkdirAll(loc.Dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", loc.Dir)
	}

	path := filepath.Join(loc.Dir, name)
	tmp, err := os.CreateTemp(loc.Dir, name+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, domain.FilePerm)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}
	return nil
}
