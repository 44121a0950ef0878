package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/cmd/recomp/commands"
	"go.trai.ch/recomp/internal/app"
	"go.trai.ch/recomp/internal/build"
	"go.trai.ch/recomp/internal/core/domain"
)

type mockApp struct {
	dependentsFunc func(ctx context.Context, query app.DependentsQuery) (app.DependentsReport, error)
	recordFunc     func(ctx context.Context, in app.RecordInput) (app.RecordSummary, error)
	inspectFunc    func(ctx context.Context) (app.Summary, error)
	cleanFunc      func(ctx context.Context) error
}

func (m *mockApp) Dependents(ctx context.Context, query app.DependentsQuery) (app.DependentsReport, error) {
	if m.dependentsFunc != nil {
		return m.dependentsFunc(ctx, query)
	}
	return app.DependentsReport{}, nil
}

func (m *mockApp) Record(ctx context.Context, in app.RecordInput) (app.RecordSummary, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, in)
	}
	return app.RecordSummary{}, nil
}

func (m *mockApp) Inspect(ctx context.Context) (app.Summary, error) {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx)
	}
	return app.Summary{}, nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func classes(names ...string) domain.ClassSet {
	return domain.NewClassSet(domain.NewClassNames(names)...)
}

func TestCommands_Dependents(t *testing.T) {
	t.Run("wires classes and constants", func(t *testing.T) {
		var captured app.DependentsQuery
		mock := &mockApp{
			dependentsFunc: func(_ context.Context, query app.DependentsQuery) (app.DependentsReport, error) {
				captured = query
				return app.DependentsReport{}, nil
			},
		}

		_, err := execute(t, mock, "dependents", "app.A", "app.B", "--constant", "app.Limits#MAX", "-c", "0x2a")

		require.NoError(t, err)
		assert.Equal(t, []string{"app.A", "app.B"}, captured.Classes)
		assert.Equal(t, []string{"app.Limits#MAX", "0x2a"}, captured.Constants)
	})

	t.Run("prints dependents", func(t *testing.T) {
		mock := &mockApp{
			dependentsFunc: func(context.Context, app.DependentsQuery) (app.DependentsReport, error) {
				return app.DependentsReport{
					Dependents: domain.NewDependents(
						classes("app.C"),
						classes("app.Inliner", "app.B"),
						domain.NewResourceSet(domain.GeneratedResource{
							Location: domain.LocationClassOutput,
							Path:     "META-INF/x",
						}),
					),
					TypesToReprocess: classes("app.Plugin"),
				}, nil
			},
		}

		out, err := execute(t, mock, "dependents", "app.A")

		require.NoError(t, err)
		goldie.New(t).Assert(t, "dependents_list", []byte(out))
	})

	t.Run("prints full rebuild", func(t *testing.T) {
		mock := &mockApp{
			dependentsFunc: func(context.Context, app.DependentsQuery) (app.DependentsReport, error) {
				return app.DependentsReport{Dependents: domain.DependencyToAll("module-info changed")}, nil
			},
		}

		out, err := execute(t, mock, "dependents", "app.A")

		require.NoError(t, err)
		goldie.New(t).Assert(t, "dependents_all", []byte(out))
	})

	t.Run("prints nothing to recompile", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "dependents", "app.A")

		require.NoError(t, err)
		assert.Equal(t, "○ Nothing to recompile\n", out)
	})

	t.Run("shows usage when no classes provided", func(t *testing.T) {
		mock := &mockApp{
			dependentsFunc: func(context.Context, app.DependentsQuery) (app.DependentsReport, error) {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "dependents")

		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			dependentsFunc: func(context.Context, app.DependentsQuery) (app.DependentsReport, error) {
				return app.DependentsReport{}, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "dependents", "app.A")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Record(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RecordInput
		mock := &mockApp{
			recordFunc: func(_ context.Context, in app.RecordInput) (app.RecordSummary, error) {
				captured = in
				return app.RecordSummary{}, nil
			},
		}

		_, err := execute(t, mock, "record",
			"--facts", "build/facts",
			"--constants", "build/constants.yaml",
			"--annotations", "build/ap.yaml",
			"--removed", "app.Gone",
			"--removed", "app.Old",
			"--full",
		)

		require.NoError(t, err)
		assert.Equal(t, app.RecordInput{
			FactsDir:        "build/facts",
			ConstantsFile:   "build/constants.yaml",
			AnnotationsFile: "build/ap.yaml",
			Removed:         []string{"app.Gone", "app.Old"},
			Full:            true,
		}, captured)
	})

	t.Run("requires facts directory", func(t *testing.T) {
		mock := &mockApp{
			recordFunc: func(context.Context, app.RecordInput) (app.RecordSummary, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "record")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "facts")
	})
}

func TestCommands_Inspect(t *testing.T) {
	t.Run("recorded state", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(context.Context) (app.Summary, error) {
				return app.Summary{
					CacheDir:         "/work/.recomp/cache",
					Compression:      "zstd",
					Recorded:         true,
					Classes:          12,
					DependencyToAll:  1,
					IndexedClasses:   3,
					IndexedHashes:    2,
					GeneratedOrigins: 1,
					FullRebuildCause: "processor X is non-incremental",
					ConstantTracking: true,
				}, nil
			},
		}

		out, err := execute(t, mock, "inspect")

		require.NoError(t, err)
		goldie.New(t).Assert(t, "inspect_recorded", []byte(out))
	})

	t.Run("nothing recorded", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(context.Context) (app.Summary, error) {
				return app.Summary{CacheDir: "/work/.recomp/cache", Compression: "none"}, nil
			},
		}

		out, err := execute(t, mock, "inspect")

		require.NoError(t, err)
		goldie.New(t).Assert(t, "inspect_empty", []byte(out))
	})
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(context.Context) error {
			called = true
			return nil
		},
	}

	_, err := execute(t, mock, "clean")

	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "recomp version "+build.Version)
}
