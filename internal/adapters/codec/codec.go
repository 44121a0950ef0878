package codec

import (
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// EncodeGraph encodes a class dependency graph snapshot.
func EncodeGraph(g *domain.ClassDependencyGraph, c domain.Compression) ([]byte, error) {
	return encode(KindGraph, c, graphToWire(g))
}

// DecodeGraph decodes a snapshot written by EncodeGraph.
func DecodeGraph(data []byte) (*domain.ClassDependencyGraph, error) {
	w, err := decode[graphWire](KindGraph, data)
	if err != nil {
		return nil, err
	}
	return graphFromWire(&w)
}

// EncodeIndex encodes a constant origin index snapshot.
func EncodeIndex(idx *domain.ConstantOriginIndex, c domain.Compression) ([]byte, error) {
	return encode(KindIndex, c, indexToWire(idx))
}

// DecodeIndex decodes a snapshot written by EncodeIndex.
func DecodeIndex(data []byte) (*domain.ConstantOriginIndex, error) {
	w, err := decode[indexWire](KindIndex, data)
	if err != nil {
		return nil, err
	}
	return indexFromWire(&w)
}

// EncodeAnnotationFacts encodes an annotation processing facts snapshot.
func EncodeAnnotationFacts(f *domain.AnnotationProcessingFacts, c domain.Compression) ([]byte, error) {
	if f == nil {
		f = &domain.AnnotationProcessingFacts{}
	}
	return encode(KindAnnotationFacts, c, annotationFactsToWire(f))
}

// DecodeAnnotationFacts decodes a snapshot written by EncodeAnnotationFacts.
func DecodeAnnotationFacts(data []byte) (*domain.AnnotationProcessingFacts, error) {
	w, err := decode[annotationFactsWire](KindAnnotationFacts, data)
	if err != nil {
		return nil, err
	}
	return annotationFactsFromWire(&w), nil
}

func encode[W any](kind Kind, c domain.Compression, w W) ([]byte, error) {
	payload, err := encMode.Marshal(w)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotEncodeFailed.Error()), "kind", kind.String())
	}
	return frame(kind, c, payload), nil
}

func decode[W any](kind Kind, data []byte) (W, error) {
	var w W
	payload, err := unframe(kind, data)
	if err != nil {
		return w, err
	}
	if err := decMode.Unmarshal(payload, &w); err != nil {
		return w, zerr.With(zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error()), "kind", kind.String())
	}
	return w, nil
}
