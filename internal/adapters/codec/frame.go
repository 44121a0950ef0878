package codec

import (
	"bytes"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kind identifies which structure a snapshot holds.
type Kind uint8

const (
	// KindGraph is a class dependency graph.
	KindGraph Kind = 1
	// KindIndex is a constant origin index.
	KindIndex Kind = 2
	// KindAnnotationFacts is a set of annotation processing facts.
	KindAnnotationFacts Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindIndex:
		return "index"
	case KindAnnotationFacts:
		return "annotation-facts"
	default:
		return "unknown"
	}
}

// FormatVersion is bumped whenever a payload layout changes incompatibly.
const FormatVersion = 1

const (
	magic      = "RCMP"
	headerSize = len(magic) + 3
)

// Header is the fixed prefix of every snapshot.
type Header struct {
	Kind        Kind
	Version     uint8
	Compression domain.Compression
}

func frame(kind Kind, c domain.Compression, payload []byte) []byte {
	body := compress(payload, c)
	out := make([]byte, 0, headerSize+len(body))
	out = append(out, magic...)
	out = append(out, byte(kind), FormatVersion, byte(c))
	return append(out, body...)
}

// ReadHeader parses the header of a snapshot without decoding its payload.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(magic)], []byte(magic)) {
		return Header{}, zerr.With(domain.ErrSnapshotCorrupt, "reason", "missing magic")
	}
	h := Header{
		Kind:        Kind(data[len(magic)]),
		Version:     data[len(magic)+1],
		Compression: domain.Compression(data[len(magic)+2]),
	}
	if h.Compression != domain.CompressionZstd && h.Compression != domain.CompressionNone {
		return Header{}, zerr.With(domain.ErrSnapshotCorrupt, "compression", uint8(h.Compression))
	}
	return h, nil
}

func unframe(kind Kind, data []byte) ([]byte, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Kind != kind {
		return nil, zerr.With(zerr.With(domain.ErrSnapshotCorrupt, "expected_kind", kind.String()), "kind", h.Kind.String())
	}
	if h.Version != FormatVersion {
		return nil, zerr.With(domain.ErrSnapshotCorrupt, "version", h.Version)
	}
	return decompress(data[headerSize:], h.Compression)
}
