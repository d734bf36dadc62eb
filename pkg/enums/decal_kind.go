package enums

import "fmt"

// DecalKind distinguishes user-placed graphics on the ball surface.
type DecalKind string

const (
	DecalKindLogo DecalKind = "logo"
	DecalKindText DecalKind = "text"
)

var validDecalKinds = []DecalKind{
	DecalKindLogo,
	DecalKindText,
}

// String implements fmt.Stringer.
func (d DecalKind) String() string {
	return string(d)
}

// IsValid reports whether the kind is recognized.
func (d DecalKind) IsValid() bool {
	for _, candidate := range validDecalKinds {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDecalKind converts a raw string into a DecalKind.
func ParseDecalKind(value string) (DecalKind, error) {
	for _, candidate := range validDecalKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid decal kind %q", value)
}
