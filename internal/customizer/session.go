package customizer

import (
	"strings"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// Defaults applied to a freshly placed decal. New decals land centered on the
// forward face of the ball so they are immediately visible in the preview.
const (
	DefaultDecalScale = 0.25
	PlaceholderText   = "Your Text"
	DefaultTextFont   = "helvetiker"
	DefaultTextColor  = "#000000"
)

var defaultDecalPosition = [3]float64{0, 0, 1}

// Decal is one user-placed graphic on the ball surface. Kind drives which
// fields carry meaning: logo decals embed their image as a data URI in
// Content, text decals carry the literal string plus Font and Color.
type Decal struct {
	ID       int             `json:"id"`
	Kind     enums.DecalKind `json:"kind"`
	Content  string          `json:"content"`
	Position [3]float64      `json:"position"`
	Rotation [3]float64      `json:"rotation"`
	Scale    float64         `json:"scale"`
	Font     string          `json:"font,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// DecalPatch carries a partial decal mutation. Nil fields are left untouched.
type DecalPatch struct {
	Content  *string     `json:"content,omitempty"`
	Position *[3]float64 `json:"position,omitempty"`
	Rotation *[3]float64 `json:"rotation,omitempty"`
	Scale    *float64    `json:"scale,omitempty"`
	Font     *string     `json:"font,omitempty"`
	Color    *string     `json:"color,omitempty"`
}

// Session is the in-progress design for one browser session and product. It
// round-trips through redis as JSON, so every field stays serializable and
// additions must keep older blobs readable.
type Session struct {
	ProductSlug   string  `json:"product_slug"`
	ColorName     string  `json:"color_name,omitempty"`
	ColorHex      string  `json:"color_hex,omitempty"`
	Decals        []Decal `json:"decals"`
	ActiveDecalID int     `json:"active_decal_id"`
	NextDecalID   int     `json:"next_decal_id"`
}

// NewSession starts an empty design for a product.
func NewSession(productSlug string) *Session {
	return &Session{
		ProductSlug: productSlug,
		Decals:      []Decal{},
		NextDecalID: 1,
	}
}

// AddDecal places a new decal with default placement and makes it active.
// Ids come from a session-lifetime sequence, so a removed decal's id is never
// reused.
func (s *Session) AddDecal(kind enums.DecalKind) *Decal {
	decal := Decal{
		ID:       s.nextID(),
		Kind:     kind,
		Position: defaultDecalPosition,
		Scale:    DefaultDecalScale,
	}
	if kind == enums.DecalKindText {
		decal.Content = PlaceholderText
		decal.Font = DefaultTextFont
		decal.Color = DefaultTextColor
	}
	s.Decals = append(s.Decals, decal)
	s.ActiveDecalID = decal.ID
	return &s.Decals[len(s.Decals)-1]
}

// AddLogoDecal places a logo decal carrying an already-encoded data URI.
func (s *Session) AddLogoDecal(dataURI string) *Decal {
	decal := s.AddDecal(enums.DecalKindLogo)
	decal.Content = dataURI
	return decal
}

// UpdateDecal merges a patch into the decal with the given id. An absent id
// is a silent no-op; the client may race a removal.
func (s *Session) UpdateDecal(id int, patch DecalPatch) {
	decal := s.find(id)
	if decal == nil {
		return
	}
	if patch.Content != nil {
		decal.Content = *patch.Content
	}
	if patch.Position != nil {
		decal.Position = *patch.Position
	}
	if patch.Rotation != nil {
		decal.Rotation = *patch.Rotation
	}
	if patch.Scale != nil {
		decal.Scale = *patch.Scale
	}
	if patch.Font != nil {
		decal.Font = *patch.Font
	}
	if patch.Color != nil {
		decal.Color = *patch.Color
	}
}

// RemoveDecal deletes the decal with the given id. Removing the active decal
// clears the selection; removing any other decal leaves it untouched.
func (s *Session) RemoveDecal(id int) {
	for i := range s.Decals {
		if s.Decals[i].ID == id {
			s.Decals = append(s.Decals[:i], s.Decals[i+1:]...)
			if s.ActiveDecalID == id {
				s.ActiveDecalID = 0
			}
			return
		}
	}
}

// SetActiveDecal selects a decal for editing. Zero clears the selection, an
// unknown id is ignored.
func (s *Session) SetActiveDecal(id int) {
	if id == 0 {
		s.ActiveDecalID = 0
		return
	}
	if s.find(id) != nil {
		s.ActiveDecalID = id
	}
}

// SelectColor records the chosen ball color variant.
func (s *Session) SelectColor(name, hex string) {
	s.ColorName = name
	s.ColorHex = hex
}

// PrintSides reports how many print sides the current design occupies.
func (s *Session) PrintSides() int {
	n := len(s.Decals)
	if n > 2 {
		n = 2
	}
	return n
}

// Snapshot flattens the design into the summary attached to cart and order
// items. The first decal maps to the front side, the second to the back;
// further decals are not printable and are dropped from the snapshot.
func (s *Session) Snapshot() types.Customization {
	snap := types.Customization{
		ColorName:  s.ColorName,
		ColorHex:   s.ColorHex,
		PrintSides: s.PrintSides(),
		Front:      types.SideCustomization{Kind: enums.SideKindNone},
		Back:       types.SideCustomization{Kind: enums.SideKindNone},
	}
	if len(s.Decals) > 0 {
		snap.Front = sideFromDecal(s.Decals[0])
	}
	if len(s.Decals) > 1 {
		snap.Back = sideFromDecal(s.Decals[1])
	}
	return snap
}

func (s *Session) find(id int) *Decal {
	for i := range s.Decals {
		if s.Decals[i].ID == id {
			return &s.Decals[i]
		}
	}
	return nil
}

func (s *Session) nextID() int {
	if s.NextDecalID < 1 {
		s.NextDecalID = 1
	}
	id := s.NextDecalID
	s.NextDecalID++
	return id
}

func sideFromDecal(decal Decal) types.SideCustomization {
	side := types.SideCustomization{Content: decal.Content}
	switch decal.Kind {
	case enums.DecalKindLogo:
		side.Kind = enums.SideKindLogo
	case enums.DecalKindText:
		side.Kind = enums.SideKindText
		side.Font = decal.Font
		side.Color = decal.Color
	default:
		side.Kind = enums.SideKindNone
	}
	if strings.TrimSpace(side.Content) == "" {
		side.Kind = enums.SideKindNone
	}
	return side
}
