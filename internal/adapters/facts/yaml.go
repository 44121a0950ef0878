package facts

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// readAndUnmarshalYAML decodes path into target, rejecting keys target does not declare.
// An empty file leaves target untouched.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is supplied by the caller that produced the facts
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFactsReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrFactsParseFailed.Error()), "path", path)
	}
	return nil
}
