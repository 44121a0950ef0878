package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/adapters/snapshot"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

func location(t *testing.T, c domain.Compression) domain.CacheLocation {
	t.Helper()
	return domain.CacheLocation{
		Dir:         filepath.Join(t.TempDir(), ".recomp", "cache"),
		Compression: c,
	}
}

func TestStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := snapshot.NewStore()
	loc := location(t, domain.CompressionZstd)

	graph, err := store.LoadGraph(loc)
	require.NoError(t, err)
	assert.Nil(t, graph)

	index, err := store.LoadIndex(loc)
	require.NoError(t, err)
	assert.Nil(t, index)

	facts, err := store.LoadAnnotationFacts(loc)
	require.NoError(t, err)
	assert.Nil(t, facts)
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	a := domain.NewClassName("app.A")
	b := domain.NewClassName("app.B")
	graph := domain.BuildGraph([]domain.ClassFacts{
		{Name: b, AccessibleDependencies: []domain.ClassName{a}},
	})
	index := domain.IndexFromClassConstants(map[domain.ClassName]domain.HashSet{
		b: domain.NewHashSet(a.OriginHash()),
	})
	facts := &domain.AnnotationProcessingFacts{FullRebuildCause: "processor is not incremental"}

	for _, c := range []domain.Compression{domain.CompressionZstd, domain.CompressionNone} {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			store := snapshot.NewStore()
			loc := location(t, c)

			require.NoError(t, store.SaveGraph(loc, graph))
			require.NoError(t, store.SaveIndex(loc, index))
			require.NoError(t, store.SaveAnnotationFacts(loc, facts))

			gotGraph, err := store.LoadGraph(loc)
			require.NoError(t, err)
			assert.True(t, graph.Equal(gotGraph))

			gotIndex, err := store.LoadIndex(loc)
			require.NoError(t, err)
			assert.Equal(t, index.ClassConstants(), gotIndex.ClassConstants())

			gotFacts, err := store.LoadAnnotationFacts(loc)
			require.NoError(t, err)
			assert.Equal(t, facts.FullRebuildCause, gotFacts.FullRebuildCause)

			entries, err := os.ReadDir(loc.Dir)
			require.NoError(t, err)
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.ElementsMatch(t, []string{
				domain.GraphFileName,
				domain.IndexFileName,
				domain.AnnotationFactsFileName,
			}, names)
		})
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	t.Parallel()

	store := snapshot.NewStore()
	loc := location(t, domain.CompressionZstd)
	a := domain.NewClassName("app.A")

	require.NoError(t, store.SaveGraph(loc, domain.BuildGraph([]domain.ClassFacts{
		{Name: domain.NewClassName("app.Old"), AccessibleDependencies: []domain.ClassName{a}},
	})))
	require.NoError(t, store.SaveGraph(loc, domain.NewClassDependencyGraph()))

	got, err := store.LoadGraph(loc)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}

func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	store := snapshot.NewStore()
	loc := location(t, domain.CompressionZstd)
	require.NoError(t, os.MkdirAll(loc.Dir, 0o750))

	path := filepath.Join(loc.Dir, domain.GraphFileName)
	//nolint:gosec // 0644 is fine for test
	require.NoError(t, os.WriteFile(path, []byte("not a snapshot"), 0o644))

	_, err := store.LoadGraph(loc)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSnapshotCorrupt.Error())
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestStore_Clean(t *testing.T) {
	t.Parallel()

	store := snapshot.NewStore()
	loc := location(t, domain.CompressionNone)
	require.NoError(t, store.SaveGraph(loc, domain.NewClassDependencyGraph()))

	require.NoError(t, store.Clean(loc))

	_, err := os.Stat(loc.Dir)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Cleaning twice is not an error.
	require.NoError(t, store.Clean(loc))
}
