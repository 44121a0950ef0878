package facts_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/adapters/facts"
	fsadapter "go.trai.ch/recomp/internal/adapters/fs"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

func c(s string) domain.ClassName {
	return domain.NewClassName(s)
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	return zErr.Metadata()
}

func TestAnalyzer_Sources(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app", "B.facts.yaml"), "class: app.B\n")
	writeFile(t, filepath.Join(root, "app", "A.facts.yaml"), "class: app.A\n")
	writeFile(t, filepath.Join(root, "app", "A.class"), "")

	sources, err := facts.NewAnalyzer(fsadapter.NewWalker()).Sources(root)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "app", "A.facts.yaml"),
		filepath.Join(root, "app", "B.facts.yaml"),
	}, sources)
}

func TestAnalyzer_Sources_MissingDir(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")

	_, err := facts.NewAnalyzer(fsadapter.NewWalker()).Sources(missing)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFactsDirNotFound.Error())
	assert.Equal(t, missing, metadata(t, err)["dir"])
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	analyzer := facts.NewAnalyzer(fsadapter.NewWalker())

	t.Run("full facts", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "Service.facts.yaml"), `
class: app.Service
accessible: [app.Model]
private: [app.Util, app.Log]
constants:
  - app.Limits#MAX
  - app.Limits#MIN
  - app.Names
`)

		got, err := analyzer.Analyze(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, c("app.Service"), got.Name)
		assert.Equal(t, []domain.ClassName{c("app.Model")}, got.AccessibleDependencies)
		assert.Equal(t, []domain.ClassName{c("app.Util"), c("app.Log")}, got.PrivateDependencies)
		assert.Equal(t, []domain.ConstantOriginHash{
			c("app.Limits").OriginHash(),
			c("app.Names").OriginHash(),
		}, got.Constants)
		require.Len(t, got.ConstantRefs, 3)
		assert.Equal(t, "app.Limits#MIN", got.ConstantRefs[1].String())
		assert.Empty(t, got.DependencyToAllReason)
	})

	t.Run("dependency to all", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "package-info.facts.yaml"), `
class: app.package-info
dependencyToAll: package annotations changed
`)

		got, err := analyzer.Analyze(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "package annotations changed", got.DependencyToAllReason)
	})

	t.Run("missing class", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "Anonymous.facts.yaml"), "accessible: [app.A]\n")

		_, err := analyzer.Analyze(context.Background(), path)

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFactsParseFailed.Error())
		assert.Equal(t, path, metadata(t, err)["path"])
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "Typo.facts.yaml"), "class: app.T\naccesible: [app.A]\n")

		_, err := analyzer.Analyze(context.Background(), path)

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFactsParseFailed.Error())
	})

	t.Run("invalid constant", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "Bad.facts.yaml"), "class: app.Bad\nconstants: ['#MAX']\n")

		_, err := analyzer.Analyze(context.Background(), path)

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidConstantRef.Error())
		assert.Equal(t, path, metadata(t, err)["path"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := analyzer.Analyze(context.Background(), filepath.Join(root, "Nope.facts.yaml"))

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFactsReadFailed.Error())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := analyzer.Analyze(ctx, filepath.Join(root, "Service.facts.yaml"))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConstantUsageReader(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	reader := facts.NewConstantUsageReader()

	t.Run("reads usage", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "constants.yaml"), `
app.Service: [app.Limits#MAX]
app.Dropped: []
`)

		got, err := reader.ReadConstantUsage(path)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Len(t, got[c("app.Service")], 1)
		assert.Equal(t, "app.Limits#MAX", got[c("app.Service")][0].String())
		assert.Empty(t, got[c("app.Dropped")])
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "empty.yaml"), "")

		got, err := reader.ReadConstantUsage(path)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid reference names the class", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "bad.yaml"), "app.Service: ['']\n")

		_, err := reader.ReadConstantUsage(path)

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidConstantRef.Error())
		assert.Equal(t, "app.Service", metadata(t, err)["class"])
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "malformed.yaml"), "app.Service: [unterminated\n")

		_, err := reader.ReadConstantUsage(path)

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFactsParseFailed.Error())
	})
}

func TestAnnotationFactsReader(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	reader := facts.NewAnnotationFactsReader()

	t.Run("reads report", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "annotations.yaml"), `
generatedTypes:
  app.Entity: [app.Entity_]
aggregatedTypes: [app.Plugin]
generatedTypesDependingOnAll: [app.PluginRegistry]
generatedResources:
  app.Entity:
    - location: SOURCE_OUTPUT
      path: app/Entity.sql
resourcesDependingOnAll:
  - location: class_output
    path: META-INF/services/app.Plugin
`)

		got, err := reader.ReadAnnotationFacts(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"app.Entity_"}, got.GeneratedTypesByOrigin[c("app.Entity")].Strings())
		assert.Equal(t, []string{"app.Plugin"}, got.AggregatedTypes.Strings())
		assert.Equal(t, []string{"app.PluginRegistry"}, got.GeneratedTypesDependingOnAllOthers.Strings())
		assert.True(t, got.GeneratedResourcesByOrigin[c("app.Entity")].Has(domain.GeneratedResource{
			Location: domain.LocationSourceOutput, Path: "app/Entity.sql",
		}))
		assert.True(t, got.GeneratedResourcesDependingOnAllOthers.Has(domain.GeneratedResource{
			Location: domain.LocationClassOutput, Path: "META-INF/services/app.Plugin",
		}))
		assert.Empty(t, got.FullRebuildCause)
	})

	t.Run("full rebuild cause", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "full.yaml"), "fullRebuildCause: processor X is non-incremental\n")

		got, err := reader.ReadAnnotationFacts(path)

		require.NoError(t, err)
		assert.Equal(t, "processor X is non-incremental", got.FullRebuildCause)
	})

	t.Run("invalid location", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, filepath.Join(root, "bad.yaml"), `
generatedResources:
  app.Entity:
    - location: NOWHERE
      path: x
`)

		_, err := reader.ReadAnnotationFacts(path)

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidResourceLocation.Error())
		assert.Equal(t, "app.Entity", metadata(t, err)["origin"])
	})
}
