// Package config provides the configuration loader for recomp.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only recomp.yaml version this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load walks up from cwd to the nearest recomp.yaml and resolves it against the directory
// holding it. Defaults rooted at cwd are returned when there is none.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(cwd), nil
	}

	var file Recompfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	cfg, err := l.resolve(filepath.Dir(configPath), &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Recompfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}

func (l *Loader) resolve(root string, file *Recompfile) (*domain.Config, error) {
	switch file.Version {
	case SupportedVersion:
	case "":
		l.Logger.Warn("no version set in " + domain.ConfigFileName + ", assuming version " + SupportedVersion)
	default:
		return nil, zerr.With(domain.ErrInvalidConfig, "version", file.Version)
	}

	cfg := domain.DefaultConfig(root)

	if file.CacheDir != "" {
		cfg.Cache.Dir = resolvePath(root, file.CacheDir)
	}

	compression, err := domain.ParseCompression(file.Compression)
	if err != nil {
		return nil, err
	}
	cfg.Cache.Compression = compression

	if file.ConstantTracking != nil {
		cfg.ConstantTracking = *file.ConstantTracking
	}

	if file.Parallelism != nil {
		switch {
		case *file.Parallelism < 0:
			return nil, zerr.With(domain.ErrInvalidConfig, "parallelism", *file.Parallelism)
		case *file.Parallelism > 0:
			cfg.Parallelism = *file.Parallelism
		}
	}

	switch domain.LogFormat(file.LogFormat) {
	case "":
	case domain.LogFormatPretty, domain.LogFormatJSON:
		cfg.LogFormat = domain.LogFormat(file.LogFormat)
	default:
		return nil, zerr.With(domain.ErrInvalidConfig, "logFormat", file.LogFormat)
	}

	return cfg, nil
}

// resolvePath returns path unchanged when absolute, otherwise joined onto root.
func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
