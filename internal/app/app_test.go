package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/adapters/telemetry"
	"go.trai.ch/recomp/internal/app"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/core/ports/mocks"
	"go.trai.ch/recomp/internal/engine/collector"
	"go.uber.org/mock/gomock"
)

const workDir = "/work"

type fixture struct {
	app         *app.App
	cfg         *domain.Config
	loader      *mocks.MockConfigLoader
	store       *mocks.MockSnapshotStore
	analyzer    *mocks.MockClassAnalyzer
	usageReader *mocks.MockConstantUsageReader
	apReader    *mocks.MockAnnotationFactsReader
	logger      *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		cfg:         domain.DefaultConfig(workDir),
		loader:      mocks.NewMockConfigLoader(ctrl),
		store:       mocks.NewMockSnapshotStore(ctrl),
		analyzer:    mocks.NewMockClassAnalyzer(ctrl),
		usageReader: mocks.NewMockConstantUsageReader(ctrl),
		apReader:    mocks.NewMockAnnotationFactsReader(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(
		f.loader,
		f.store,
		collector.New(f.analyzer),
		f.usageReader,
		f.apReader,
		f.logger,
		telemetry.NewNoOpTracer(),
	).WithWorkDir(workDir)

	f.loader.EXPECT().Load(workDir).Return(f.cfg, nil).AnyTimes()
	f.logger.EXPECT().SetFormat(domain.LogFormatPretty).AnyTimes()
	return f
}

func (f *fixture) expectPrevious(graph *domain.ClassDependencyGraph, index *domain.ConstantOriginIndex, ap *domain.AnnotationProcessingFacts) {
	f.store.EXPECT().LoadGraph(f.cfg.Cache).Return(graph, nil)
	f.store.EXPECT().LoadIndex(f.cfg.Cache).Return(index, nil)
	f.store.EXPECT().LoadAnnotationFacts(f.cfg.Cache).Return(ap, nil)
}

func (f *fixture) expectFacts(dir string, facts ...domain.ClassFacts) {
	sources := make([]string, len(facts))
	for i, cf := range facts {
		sources[i] = cf.Name.String()
	}
	f.analyzer.EXPECT().Sources(dir).Return(sources, nil)
	for _, cf := range facts {
		f.analyzer.EXPECT().Analyze(gomock.Any(), cf.Name.String()).Return(cf, nil)
	}
}

func c(s string) domain.ClassName {
	return domain.NewClassName(s)
}

func TestOpenSession_NothingRecorded(t *testing.T) {
	f := newFixture(t)
	f.expectPrevious(nil, nil, nil)
	f.logger.EXPECT().Warn(gomock.Any())

	session, err := f.app.OpenSession(context.Background())

	require.NoError(t, err)
	d := session.Dependents([]domain.ClassName{c("app.A")}, nil)
	assert.True(t, d.IsDependencyToAll())
	assert.Equal(t, app.NoPreviousCompile, d.Cause())
}

func TestOpenSession_LoadFailure(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().LoadGraph(f.cfg.Cache).Return(nil, domain.ErrSnapshotCorrupt)

	_, err := f.app.OpenSession(context.Background())

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSessionLoadFailed.Error())
	assert.ErrorIs(t, err, domain.ErrSnapshotCorrupt)
}

func TestOpenSession_ConfigFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(workDir).Return(nil, domain.ErrConfigParseFailed)

	a := app.New(loader, nil, nil, nil, nil, mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer()).
		WithWorkDir(workDir)

	_, err := a.OpenSession(context.Background())

	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestDependents(t *testing.T) {
	graph := domain.BuildGraph([]domain.ClassFacts{
		{Name: c("app.B"), AccessibleDependencies: []domain.ClassName{c("app.A")}},
		{Name: c("app.C"), PrivateDependencies: []domain.ClassName{c("app.A")}},
		{Name: c("app.Info"), DependencyToAllReason: "package-info changed"},
	})
	index := domain.IndexFromClassConstants(map[domain.ClassName]domain.HashSet{
		c("app.Inliner"): domain.NewHashSet(c("app.A").OriginHash()),
	})

	t.Run("transitive dependents", func(t *testing.T) {
		f := newFixture(t)
		f.expectPrevious(graph, index, nil)

		report, err := f.app.Dependents(context.Background(), app.DependentsQuery{Classes: []string{"app.A"}})

		require.NoError(t, err)
		assert.Equal(t, []string{"app.B", "app.Inliner"}, report.Dependents.AccessibleDependents().Strings())
		assert.Equal(t, []string{"app.C"}, report.Dependents.PrivateDependents().Strings())
		assert.Empty(t, report.TypesToReprocess)
	})

	t.Run("escalation is logged", func(t *testing.T) {
		f := newFixture(t)
		f.expectPrevious(graph, index, nil)
		f.logger.EXPECT().Warn("full recompilation required: package-info changed")

		report, err := f.app.Dependents(context.Background(), app.DependentsQuery{Classes: []string{"app.Info"}})

		require.NoError(t, err)
		assert.True(t, report.Dependents.IsDependencyToAll())
	})

	t.Run("changed constants without tracking", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.ConstantTracking = false
		f.expectPrevious(graph, index, nil)
		f.logger.EXPECT().Warn(gomock.Any())

		report, err := f.app.Dependents(context.Background(), app.DependentsQuery{
			Classes:   []string{"app.A"},
			Constants: []string{"app.A#LIMIT"},
		})

		require.NoError(t, err)
		assert.True(t, report.Dependents.IsDependencyToAll())
	})

	t.Run("no classes", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.app.Dependents(context.Background(), app.DependentsQuery{})

		require.ErrorIs(t, err, domain.ErrNoClassesSpecified)
	})

	t.Run("invalid constant", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.app.Dependents(context.Background(), app.DependentsQuery{
			Classes:   []string{"app.A"},
			Constants: []string{"99999999999"},
		})

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidConstantHash.Error())
	})
}

func TestParseChangedConstants(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    domain.HashSet
		wantErr error
	}{
		{name: "none", input: nil, want: domain.HashSet{}},
		{name: "decimal hash", input: []string{"42"}, want: domain.NewHashSet(42)},
		{name: "hex hash", input: []string{"0x2a"}, want: domain.NewHashSet(42)},
		{name: "reference", input: []string{"app.Limits#MAX"}, want: domain.NewHashSet(c("app.Limits").OriginHash())},
		{name: "hash too large", input: []string{"4294967296"}, wantErr: domain.ErrInvalidConstantHash},
		{name: "empty reference", input: []string{" "}, wantErr: domain.ErrInvalidConstantRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.ParseChangedConstants(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_Full(t *testing.T) {
	f := newFixture(t)
	limits := domain.ConstantRef{Owner: c("app.Limits"), Field: "MAX"}
	f.expectFacts("/facts",
		domain.ClassFacts{Name: c("app.B"), AccessibleDependencies: []domain.ClassName{c("app.A")}},
		domain.ClassFacts{
			Name:         c("app.C"),
			Constants:    []domain.ConstantOriginHash{limits.OriginHash()},
			ConstantRefs: []domain.ConstantRef{limits},
		},
	)
	f.logger.EXPECT().Info(gomock.Any())

	var savedGraph *domain.ClassDependencyGraph
	var savedIndex *domain.ConstantOriginIndex
	f.store.EXPECT().SaveGraph(f.cfg.Cache, gomock.Any()).DoAndReturn(
		func(_ domain.CacheLocation, g *domain.ClassDependencyGraph) error {
			savedGraph = g
			return nil
		})
	f.store.EXPECT().SaveIndex(f.cfg.Cache, gomock.Any()).DoAndReturn(
		func(_ domain.CacheLocation, idx *domain.ConstantOriginIndex) error {
			savedIndex = idx
			return nil
		})
	f.store.EXPECT().SaveAnnotationFacts(f.cfg.Cache, nil).Return(nil)

	summary, err := f.app.Record(context.Background(), app.RecordInput{FactsDir: "/facts", Full: true})

	require.NoError(t, err)
	assert.Equal(t, app.RecordSummary{Analyzed: 2, GraphClasses: 2, IndexedClasses: 1, Full: true}, summary)
	assert.Equal(t, []string{"app.B"}, savedGraph.Dependents(c("app.A")).AccessibleDependents().Strings())
	assert.Equal(t, []string{"app.C"}, savedIndex.DependentsOf(c("app.Limits").OriginHash()).Strings())
}

func TestRecord_Incremental(t *testing.T) {
	f := newFixture(t)

	previousGraph := domain.BuildGraph([]domain.ClassFacts{
		{Name: c("app.B"), AccessibleDependencies: []domain.ClassName{c("app.A")}},
		{Name: c("app.Gone"), AccessibleDependencies: []domain.ClassName{c("app.A")}},
		{Name: c("app.D"), AccessibleDependencies: []domain.ClassName{c("app.A")}},
	})
	previousIndex := domain.IndexFromClassConstants(map[domain.ClassName]domain.HashSet{
		c("app.D"):    domain.NewHashSet(c("app.Limits").OriginHash()),
		c("app.Gone"): domain.NewHashSet(c("app.Limits").OriginHash()),
	})
	previousFacts := &domain.AnnotationProcessingFacts{AggregatedTypes: domain.NewClassSet(c("app.Plugin"))}
	f.expectPrevious(previousGraph, previousIndex, previousFacts)

	// app.B was recompiled and now depends on app.E instead of app.A.
	f.expectFacts("/facts", domain.ClassFacts{Name: c("app.B"), AccessibleDependencies: []domain.ClassName{c("app.E")}})
	f.usageReader.EXPECT().ReadConstantUsage("/constants.yaml").Return(map[domain.ClassName][]domain.ConstantRef{
		c("app.B"): {{Owner: c("app.Names")}},
	}, nil)
	f.logger.EXPECT().Info(gomock.Any())

	var savedGraph *domain.ClassDependencyGraph
	var savedIndex *domain.ConstantOriginIndex
	f.store.EXPECT().SaveGraph(f.cfg.Cache, gomock.Any()).DoAndReturn(
		func(_ domain.CacheLocation, g *domain.ClassDependencyGraph) error {
			savedGraph = g
			return nil
		})
	f.store.EXPECT().SaveIndex(f.cfg.Cache, gomock.Any()).DoAndReturn(
		func(_ domain.CacheLocation, idx *domain.ConstantOriginIndex) error {
			savedIndex = idx
			return nil
		})
	f.store.EXPECT().SaveAnnotationFacts(f.cfg.Cache, previousFacts).Return(nil)

	summary, err := f.app.Record(context.Background(), app.RecordInput{
		FactsDir:      "/facts",
		ConstantsFile: "/constants.yaml",
		Removed:       []string{"app.Gone"},
	})

	require.NoError(t, err)
	assert.False(t, summary.Full)
	assert.Equal(t, []string{"app.D"}, savedGraph.Dependents(c("app.A")).AccessibleDependents().Strings())
	assert.Equal(t, []string{"app.B"}, savedGraph.Dependents(c("app.E")).AccessibleDependents().Strings())
	assert.Equal(t, []string{"app.D"}, savedIndex.DependentsOf(c("app.Limits").OriginHash()).Strings())
	assert.Equal(t, []string{"app.B"}, savedIndex.DependentsOf(c("app.Names").OriginHash()).Strings())
}

func TestRecord_WithoutPreviousStateIsFull(t *testing.T) {
	f := newFixture(t)
	f.expectPrevious(nil, nil, nil)
	f.expectFacts("/facts", domain.ClassFacts{Name: c("app.A")})
	ap := &domain.AnnotationProcessingFacts{FullRebuildCause: "processor X is non-incremental"}
	f.apReader.EXPECT().ReadAnnotationFacts("/ap.yaml").Return(ap, nil)
	f.logger.EXPECT().Info(app.NoPreviousCompile + ", recording a full compile")
	f.logger.EXPECT().Info(gomock.Any())
	f.store.EXPECT().SaveGraph(f.cfg.Cache, gomock.Any()).Return(nil)
	f.store.EXPECT().SaveIndex(f.cfg.Cache, gomock.Any()).Return(nil)
	f.store.EXPECT().SaveAnnotationFacts(f.cfg.Cache, ap).Return(nil)

	summary, err := f.app.Record(context.Background(), app.RecordInput{FactsDir: "/facts", AnnotationsFile: "/ap.yaml"})

	require.NoError(t, err)
	assert.True(t, summary.Full)
}

func TestRecord_Failures(t *testing.T) {
	t.Run("analysis failure", func(t *testing.T) {
		f := newFixture(t)
		f.analyzer.EXPECT().Sources("/facts").Return([]string{"Broken"}, nil)
		f.analyzer.EXPECT().Analyze(gomock.Any(), "Broken").Return(domain.ClassFacts{}, errors.New("truncated"))

		_, err := f.app.Record(context.Background(), app.RecordInput{FactsDir: "/facts", Full: true})

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrAnalysisFailed.Error())
	})

	t.Run("save failure", func(t *testing.T) {
		f := newFixture(t)
		f.expectFacts("/facts", domain.ClassFacts{Name: c("app.A")})
		f.store.EXPECT().SaveGraph(f.cfg.Cache, gomock.Any()).Return(domain.ErrSnapshotWriteFailed)

		_, err := f.app.Record(context.Background(), app.RecordInput{FactsDir: "/facts", Full: true})

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrRecordFailed.Error())
		assert.ErrorIs(t, err, domain.ErrSnapshotWriteFailed)
	})

	t.Run("constant usage failure", func(t *testing.T) {
		f := newFixture(t)
		f.expectFacts("/facts")
		f.usageReader.EXPECT().ReadConstantUsage("/c.yaml").Return(nil, domain.ErrFactsParseFailed)

		_, err := f.app.Record(context.Background(), app.RecordInput{FactsDir: "/facts", ConstantsFile: "/c.yaml", Full: true})

		require.ErrorIs(t, err, domain.ErrFactsParseFailed)
	})
}

func TestInspect(t *testing.T) {
	f := newFixture(t)
	graph := domain.BuildGraph([]domain.ClassFacts{
		{Name: c("app.B"), AccessibleDependencies: []domain.ClassName{c("app.A")}},
		{Name: c("app.Info"), DependencyToAllReason: "package-info"},
	})
	index := domain.IndexFromClassConstants(map[domain.ClassName]domain.HashSet{
		c("app.B"): domain.NewHashSet(1, 2),
	})
	ap := &domain.AnnotationProcessingFacts{
		GeneratedTypesByOrigin: map[domain.ClassName]domain.ClassSet{c("app.E"): domain.NewClassSet(c("app.E_"))},
	}
	f.expectPrevious(graph, index, ap)

	s, err := f.app.Inspect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, app.Summary{
		CacheDir:         f.cfg.Cache.Dir,
		Compression:      "zstd",
		Recorded:         true,
		Classes:          2,
		DependencyToAll:  1,
		IndexedClasses:   1,
		IndexedHashes:    2,
		GeneratedOrigins: 1,
		ConstantTracking: true,
	}, s)
}

func TestInspect_NothingRecorded(t *testing.T) {
	f := newFixture(t)
	f.expectPrevious(nil, nil, nil)

	s, err := f.app.Inspect(context.Background())

	require.NoError(t, err)
	assert.False(t, s.Recorded)
	assert.Zero(t, s.Classes)
	assert.Zero(t, s.IndexedClasses)
}

func TestClean(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Clean(f.cfg.Cache).Return(nil)
	f.logger.EXPECT().Info("removed " + f.cfg.Cache.Dir)

	require.NoError(t, f.app.Clean(context.Background()))
}

func TestClean_Failure(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Clean(f.cfg.Cache).Return(domain.ErrCacheCleanFailed)

	require.ErrorIs(t, f.app.Clean(context.Background()), domain.ErrCacheCleanFailed)
}

func TestCancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.Record(ctx, app.RecordInput{FactsDir: "/facts"})

	require.ErrorIs(t, err, context.Canceled)
}

func TestRecord_Traced(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	analyzer := mocks.NewMockClassAnalyzer(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)

	loader.EXPECT().Load(workDir).Return(domain.DefaultConfig(workDir), nil)
	log.EXPECT().SetFormat(gomock.Any())
	analyzer.EXPECT().Sources("/missing").Return(nil, domain.ErrFactsDirNotFound)

	recordSpan := mocks.NewMockSpan(ctrl)
	collectSpan := mocks.NewMockSpan(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "record").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, recordSpan
		})
	tracer.EXPECT().Start(gomock.Any(), "collect").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, collectSpan
		})

	recordSpan.EXPECT().SetAttribute("facts_dir", "/missing")
	recordSpan.EXPECT().SetAttribute("removed", 0)
	recordSpan.EXPECT().RecordError(domain.ErrFactsDirNotFound)
	recordSpan.EXPECT().End()
	collectSpan.EXPECT().SetAttribute("parallelism", gomock.Any())
	collectSpan.EXPECT().RecordError(domain.ErrFactsDirNotFound)
	collectSpan.EXPECT().End()

	a := app.New(loader, nil, collector.New(analyzer), nil, nil, log, tracer).WithWorkDir(workDir)

	_, err := a.Record(context.Background(), app.RecordInput{FactsDir: "/missing", Full: true})

	require.ErrorIs(t, err, domain.ErrFactsDirNotFound)
}
