package domain

import (
	"cmp"
	"strings"

	"go.trai.ch/zerr"
)

// ResourceLocation is the output location an annotation processor wrote a resource to.
type ResourceLocation uint8

const (
	// LocationClassOutput is the class output directory.
	LocationClassOutput ResourceLocation = iota
	// LocationSourceOutput is the generated sources directory.
	LocationSourceOutput
	// LocationNativeHeaderOutput is the native headers directory.
	LocationNativeHeaderOutput
)

var resourceLocationNames = [...]string{
	LocationClassOutput:        "CLASS_OUTPUT",
	LocationSourceOutput:       "SOURCE_OUTPUT",
	LocationNativeHeaderOutput: "NATIVE_HEADER_OUTPUT",
}

// String returns the canonical upper-case name.
func (l ResourceLocation) String() string {
	if int(l) < len(resourceLocationNames) {
		return resourceLocationNames[l]
	}
	return "UNKNOWN"
}

// ParseResourceLocation parses a location name, case-insensitively.
func ParseResourceLocation(s string) (ResourceLocation, error) {
	for i, name := range resourceLocationNames {
		if strings.EqualFold(name, s) {
			return ResourceLocation(i), nil //nolint:gosec // bounded by array length
		}
	}
	return 0, zerr.With(ErrInvalidResourceLocation, "location", s)
}

// GeneratedResource is a non-class artifact produced by annotation processing.
type GeneratedResource struct {
	Location ResourceLocation
	Path     string
}

// Compare orders resources by location, then path.
func (r GeneratedResource) Compare(other GeneratedResource) int {
	if c := cmp.Compare(r.Location, other.Location); c != 0 {
		return c
	}
	return strings.Compare(r.Path, other.Path)
}

// String returns "LOCATION:path".
func (r GeneratedResource) String() string {
	return r.Location.String() + ":" + r.Path
}
