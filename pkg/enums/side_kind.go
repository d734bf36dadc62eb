package enums

import "fmt"

// SideKind is the design carried by one print side of the ball. Unlike
// DecalKind it admits "none" so order snapshots can record an unused side.
type SideKind string

const (
	SideKindLogo SideKind = "logo"
	SideKindText SideKind = "text"
	SideKindNone SideKind = "none"
)

var validSideKinds = []SideKind{
	SideKindLogo,
	SideKindText,
	SideKindNone,
}

// String implements fmt.Stringer.
func (s SideKind) String() string {
	return string(s)
}

// IsValid reports whether the kind is recognized.
func (s SideKind) IsValid() bool {
	for _, candidate := range validSideKinds {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSideKind converts a raw string into a SideKind.
func ParseSideKind(value string) (SideKind, error) {
	for _, candidate := range validSideKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid side kind %q", value)
}
