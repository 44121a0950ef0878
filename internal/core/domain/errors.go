package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConstantRef is returned when a constant reference has no declaring class.
	ErrInvalidConstantRef = zerr.New("invalid constant reference, expected format: pkg.Owner#FIELD")

	// ErrInvalidResourceLocation is returned when a generated resource names an unknown location.
	ErrInvalidResourceLocation = zerr.New("invalid resource location, expected CLASS_OUTPUT, SOURCE_OUTPUT or NATIVE_HEADER_OUTPUT")

	// ErrIndexOutOfRange is returned when a constant index refers to a class outside its dictionary.
	ErrIndexOutOfRange = zerr.New("constant index position out of range")

	// ErrNoClassesSpecified is returned when a dependents query names no classes.
	ErrNoClassesSpecified = zerr.New("no classes specified")

	// ErrInvalidConstantHash is returned when a changed constant is neither a hash nor a reference.
	ErrInvalidConstantHash = zerr.New("invalid constant, expected a 32-bit hash or pkg.Owner#FIELD")

	// ErrSnapshotCorrupt is returned when a snapshot file has an unexpected header.
	ErrSnapshotCorrupt = zerr.New("snapshot is corrupt")

	// ErrSnapshotEncodeFailed is returned when a snapshot cannot be encoded.
	ErrSnapshotEncodeFailed = zerr.New("failed to encode snapshot")

	// ErrSnapshotDecodeFailed is returned when a snapshot payload cannot be decoded.
	ErrSnapshotDecodeFailed = zerr.New("failed to decode snapshot")

	// ErrSnapshotReadFailed is returned when a snapshot file cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot")

	// ErrSnapshotWriteFailed is returned when a snapshot file cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write snapshot")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheCleanFailed is returned when the cache directory cannot be removed.
	ErrCacheCleanFailed = zerr.New("failed to remove cache directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds a value out of range.
	ErrInvalidConfig = zerr.New("invalid config value")

	// ErrFactsReadFailed is returned when a facts file cannot be read.
	ErrFactsReadFailed = zerr.New("failed to read facts file")

	// ErrFactsParseFailed is returned when a facts file cannot be parsed.
	ErrFactsParseFailed = zerr.New("failed to parse facts file")

	// ErrFactsDirNotFound is returned when the facts directory does not exist.
	ErrFactsDirNotFound = zerr.New("facts directory not found")

	// ErrAnalysisFailed is returned when extracting facts from a compiled class fails.
	ErrAnalysisFailed = zerr.New("failed to analyze class")

	// ErrSessionLoadFailed is returned when the persisted state cannot be loaded.
	ErrSessionLoadFailed = zerr.New("failed to load persisted state")

	// ErrRecordFailed is returned when the state of a compile cannot be recorded.
	ErrRecordFailed = zerr.New("failed to record compile")
)
