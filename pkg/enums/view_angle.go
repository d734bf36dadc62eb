package enums

import "fmt"

// ViewAngle selects the camera angle for preview rendering. The second print
// side is only visible from the side view.
type ViewAngle string

const (
	ViewAngleTopDown ViewAngle = "top-down"
	ViewAngleSide    ViewAngle = "side"
)

var validViewAngles = []ViewAngle{
	ViewAngleTopDown,
	ViewAngleSide,
}

// String implements fmt.Stringer.
func (v ViewAngle) String() string {
	return string(v)
}

// IsValid reports whether the angle is recognized.
func (v ViewAngle) IsValid() bool {
	for _, candidate := range validViewAngles {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseViewAngle converts a raw string into a ViewAngle.
func ParseViewAngle(value string) (ViewAngle, error) {
	for _, candidate := range validViewAngles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid view angle %q", value)
}
