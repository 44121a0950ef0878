// Package facts reads the facts a compile produced: one YAML file per compiled class, the
// constant usage delta and the annotation processing report.
package facts

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	fsadapter "go.trai.ch/recomp/internal/adapters/fs"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Analyzer implements ports.ClassAnalyzer over *.facts.yaml files.
type Analyzer struct {
	walker  *fsadapter.Walker
	ignores []string
}

// NewAnalyzer creates a new Analyzer that discovers facts files with walker.
func NewAnalyzer(walker *fsadapter.Walker, ignores ...string) *Analyzer {
	return &Analyzer{walker: walker, ignores: ignores}
}

// Sources lists every facts file under root in lexical order.
func (a *Analyzer) Sources(root string) ([]string, error) {
	var sources []string
	for path, err := range a.walker.WalkFiles(root, domain.FactsFileSuffix, a.ignores) {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(domain.ErrFactsDirNotFound, "dir", root)
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFactsReadFailed.Error()), "dir", root)
		}
		sources = append(sources, path)
	}
	return sources, nil
}

// Analyze reads the facts of one compiled class.
func (a *Analyzer) Analyze(ctx context.Context, source string) (domain.ClassFacts, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClassFacts{}, err
	}

	var file ClassFile
	if err := readAndUnmarshalYAML(source, &file); err != nil {
		return domain.ClassFacts{}, err
	}
	return toClassFacts(source, &file)
}

func toClassFacts(source string, file *ClassFile) (domain.ClassFacts, error) {
	name := strings.TrimSpace(file.Class)
	if name == "" {
		return domain.ClassFacts{}, zerr.With(zerr.With(domain.ErrFactsParseFailed, "path", source), "reason", "missing class")
	}

	constants, err := parseConstants(file.Constants)
	if err != nil {
		return domain.ClassFacts{}, zerr.With(err, "path", source)
	}
	hashes := make([]domain.ConstantOriginHash, 0, len(constants))
	seen := make(domain.HashSet, len(constants))
	for _, ref := range constants {
		h := ref.OriginHash()
		if !seen.Has(h) {
			seen.Add(h)
			hashes = append(hashes, h)
		}
	}

	return domain.ClassFacts{
		Name:                   domain.NewClassName(name),
		AccessibleDependencies: domain.NewClassNames(file.Accessible),
		PrivateDependencies:    domain.NewClassNames(file.Private),
		Constants:              hashes,
		ConstantRefs:           constants,
		DependencyToAllReason:  file.DependencyToAll,
	}, nil
}

func parseConstants(refs []string) ([]domain.ConstantRef, error) {
	res := make([]domain.ConstantRef, 0, len(refs))
	for _, s := range refs {
		ref, err := domain.ParseConstantRef(s)
		if err != nil {
			return nil, err
		}
		res = append(res, ref)
	}
	return res, nil
}
