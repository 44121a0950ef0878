// Package app implements the application layer for recomp.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/engine/collector"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.SnapshotStore
	collector    *collector.Collector
	usageReader  ports.ConstantUsageReader
	apReader     ports.AnnotationFactsReader
	logger       ports.Logger
	tracer       ports.Tracer
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.SnapshotStore,
	coll *collector.Collector,
	usageReader ports.ConstantUsageReader,
	apReader ports.AnnotationFactsReader,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		collector:    coll,
		usageReader:  usageReader,
		apReader:     apReader,
		logger:       log,
		tracer:       tracer,
	}
}

// WithWorkDir makes the App resolve its configuration from dir instead of the process
// working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// loadConfig resolves the configuration and applies its log format.
func (a *App) loadConfig(ctx context.Context) (*domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cwd := a.workDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return nil, zerr.Wrap(err, "failed to get current working directory")
		}
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, err
	}
	a.logger.SetFormat(cfg.LogFormat)
	return cfg, nil
}

// Clean removes every snapshot of the project.
func (a *App) Clean(ctx context.Context) error {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}

	if err := a.store.Clean(cfg.Cache); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", cfg.Cache.Dir))
	return nil
}
