package enums

import "fmt"

// Lighting is the lighting condition requested from the preview collaborator.
type Lighting string

const (
	LightingSunny    Lighting = "sunny"
	LightingOvercast Lighting = "overcast"
	LightingIndoor   Lighting = "indoor"
)

var validLightings = []Lighting{
	LightingSunny,
	LightingOvercast,
	LightingIndoor,
}

// String implements fmt.Stringer.
func (l Lighting) String() string {
	return string(l)
}

// IsValid reports whether the lighting condition is recognized.
func (l Lighting) IsValid() bool {
	for _, candidate := range validLightings {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLighting converts a raw string into a Lighting.
func ParseLighting(value string) (Lighting, error) {
	for _, candidate := range validLightings {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lighting %q", value)
}
