package types

import (
	"strings"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
)

// SideCustomization is the flattened design snapshot for one print side of
// the ball, used by cart and order persistence. The richer in-session decal
// list stays inside the customizer; only this summary survives a cart add.
//
// Kind drives which fields are meaningful: "logo" carries Content as an
// embedded image payload (data URI), "text" carries Content as the literal
// string plus Font/Color, "none" carries nothing.
type SideCustomization struct {
	Kind    enums.SideKind `json:"kind"`
	Content string         `json:"content,omitempty"`
	Font    string         `json:"font,omitempty"`
	Color   string         `json:"color,omitempty"`
}

// None reports whether the side carries no design.
func (s SideCustomization) None() bool {
	return s.Kind == "" || s.Kind == enums.SideKindNone || strings.TrimSpace(s.Content) == ""
}

// Customization is the snapshot attached to a cart line item or order item.
type Customization struct {
	ColorName  string            `json:"color_name,omitempty"`
	ColorHex   string            `json:"color_hex,omitempty"`
	PrintSides int               `json:"print_sides"`
	Front      SideCustomization `json:"front"`
	Back       SideCustomization `json:"back"`
}

// DecalCount returns how many sides carry a design, which is what the
// pricing surcharge is based on.
func (c Customization) DecalCount() int {
	count := 0
	if !c.Front.None() {
		count++
	}
	if !c.Back.None() {
		count++
	}
	return count
}
