package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// ConstantOriginHash is the 32-bit hash of a constant's origin.
// Several origins may share a hash; such collisions only widen the set of classes to
// recompile, they never drop one.
type ConstantOriginHash uint32

// HashConstantOrigin hashes the declaring class of a constant.
func HashConstantOrigin(origin string) ConstantOriginHash {
	return ConstantOriginHash(uint32(xxhash.Sum64String(origin))) //nolint:gosec // truncation intended
}

// constantFieldSeparator splits the declaring class from the field in a ConstantRef's text form.
const constantFieldSeparator = "#"

// ConstantRef points at a compile-time constant whose value a class may have inlined.
type ConstantRef struct {
	// Owner is the class declaring the constant.
	Owner ClassName
	// Field is the constant's field name. It is informational and may be empty.
	Field string
}

// ParseConstantRef parses "pkg.Owner" or "pkg.Owner#FIELD".
func ParseConstantRef(s string) (ConstantRef, error) {
	owner, field, _ := strings.Cut(strings.TrimSpace(s), constantFieldSeparator)
	if owner == "" {
		return ConstantRef{}, zerr.With(ErrInvalidConstantRef, "constant", s)
	}
	return ConstantRef{Owner: NewClassName(owner), Field: field}, nil
}

// OriginHash returns the hash of the declaring class.
func (r ConstantRef) OriginHash() ConstantOriginHash {
	return r.Owner.OriginHash()
}

// String returns the textual form accepted by ParseConstantRef.
func (r ConstantRef) String() string {
	if r.Field == "" {
		return r.Owner.String()
	}
	return r.Owner.String() + constantFieldSeparator + r.Field
}
