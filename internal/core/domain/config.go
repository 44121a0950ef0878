package domain

import (
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Compression selects how snapshot payloads are stored.
type Compression uint8

const (
	// CompressionZstd stores payloads zstd-compressed.
	CompressionZstd Compression = iota
	// CompressionNone stores payloads as plain CBOR.
	CompressionNone
)

func (c Compression) String() string {
	if c == CompressionNone {
		return "none"
	}
	return "zstd"
}

// ParseCompression parses the textual form used in recomp.yaml.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "zstd":
		return CompressionZstd, nil
	case "none":
		return CompressionNone, nil
	default:
		return 0, zerr.With(ErrInvalidConfig, "compression", s)
	}
}

// LogFormat selects the logger output.
type LogFormat string

const (
	// LogFormatPretty renders colored, human-readable lines.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// CacheLocation is where the snapshots of one project live.
type CacheLocation struct {
	Dir         string
	Compression Compression
}

// Config is the resolved project configuration.
type Config struct {
	// Root is the directory holding recomp.yaml, or the working directory when there is none.
	Root             string
	Cache            CacheLocation
	ConstantTracking bool
	Parallelism      int
	LogFormat        LogFormat
}

// DefaultConfig returns the configuration used when no recomp.yaml is found.
func DefaultConfig(root string) *Config {
	return &Config{
		Root: root,
		Cache: CacheLocation{
			Dir:         filepath.Join(root, DefaultCachePath()),
			Compression: CompressionZstd,
		},
		ConstantTracking: true,
		Parallelism:      runtime.NumCPU(),
		LogFormat:        LogFormatPretty,
	}
}
