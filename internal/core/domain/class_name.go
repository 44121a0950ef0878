package domain

import (
	"slices"
	"strings"
	"unique"
)

// ClassName identifies a compiled type by its fully qualified name.
// It wraps a unique.Handle[string] so that the many repeated references to the same
// class across the graph and the constant index share one string.
type ClassName struct {
	h unique.Handle[string]
}

// NewClassName interns s as a ClassName.
func NewClassName(s string) ClassName {
	return ClassName{
		h: unique.Make(s),
	}
}

// NewClassNames interns every string of s.
func NewClassNames(s []string) []ClassName {
	res := make([]ClassName, len(s))
	for i, s := range s {
		res[i] = NewClassName(s)
	}
	return res
}

// String returns the fully qualified name.
func (c ClassName) String() string {
	var zero unique.Handle[string]
	if c.h == zero {
		return ""
	}
	return c.h.Value()
}

// IsZero reports whether c was never assigned a name.
func (c ClassName) IsZero() bool {
	var zero unique.Handle[string]
	return c.h == zero
}

// OriginHash returns the constant origin hash under which constants declared by this
// class are indexed.
func (c ClassName) OriginHash() ConstantOriginHash {
	return HashConstantOrigin(c.String())
}

// Compare orders class names lexically.
func (c ClassName) Compare(other ClassName) int {
	return strings.Compare(c.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (c ClassName) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ClassName) UnmarshalText(text []byte) error {
	c.h = unique.Make(string(text))
	return nil
}

// SortClassNames sorts names in place and returns them.
func SortClassNames(names []ClassName) []ClassName {
	slices.SortFunc(names, ClassName.Compare)
	return names
}
