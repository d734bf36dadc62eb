package customizer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/catalog"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/config"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// ProductFinder is the slice of the catalog the customizer needs.
type ProductFinder interface {
	GetProduct(ctx context.Context, slug string) (*catalog.ProductDTO, error)
}

// SessionDTO is the customizer state returned to the storefront.
type SessionDTO struct {
	ProductSlug   string              `json:"product_slug"`
	ColorName     string              `json:"color_name,omitempty"`
	ColorHex      string              `json:"color_hex,omitempty"`
	Decals        []Decal             `json:"decals"`
	ActiveDecalID int                 `json:"active_decal_id"`
	PrintSides    int                 `json:"print_sides"`
	Snapshot      types.Customization `json:"snapshot"`
}

// QuoteDTO is the price breakdown for the current design at a quantity.
type QuoteDTO struct {
	BasePrice  int64 `json:"base_price"`
	Decals     int   `json:"decals"`
	Surcharge  int64 `json:"surcharge"`
	Quantity   int   `json:"quantity"`
	UnitPrice  int64 `json:"unit_price"`
	TotalPrice int64 `json:"total_price"`
}

// Service drives the per-session ball designer.
type Service interface {
	GetSession(ctx context.Context, sessionID, productSlug string) (*SessionDTO, error)
	AddDecal(ctx context.Context, sessionID, productSlug string, kind enums.DecalKind) (*SessionDTO, error)
	UpdateDecal(ctx context.Context, sessionID, productSlug string, decalID int, patch DecalPatch) (*SessionDTO, error)
	RemoveDecal(ctx context.Context, sessionID, productSlug string, decalID int) (*SessionDTO, error)
	SetActiveDecal(ctx context.Context, sessionID, productSlug string, decalID int) (*SessionDTO, error)
	SelectColor(ctx context.Context, sessionID, productSlug, colorName string) (*SessionDTO, error)
	UploadLogo(ctx context.Context, sessionID, productSlug string, data []byte) (*SessionDTO, error)
	Quote(ctx context.Context, sessionID, productSlug string, qty int) (*QuoteDTO, error)
	Reset(ctx context.Context, sessionID, productSlug string) error
}

type service struct {
	products ProductFinder
	store    *Store
	maxLogo  int64
}

func NewService(products ProductFinder, store *Store, cfg config.CustomizerConfig) (Service, error) {
	if products == nil || store == nil {
		return nil, fmt.Errorf("customizer service requires a product finder and store")
	}
	return &service{
		products: products,
		store:    store,
		maxLogo:  cfg.MaxLogoBytes,
	}, nil
}

func (s *service) GetSession(ctx context.Context, sessionID, productSlug string) (*SessionDTO, error) {
	session, _, err := s.loadSession(ctx, sessionID, productSlug)
	if err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

func (s *service) AddDecal(ctx context.Context, sessionID, productSlug string, kind enums.DecalKind) (*SessionDTO, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid decal kind %q", kind))
	}
	return s.mutate(ctx, sessionID, productSlug, func(session *Session) error {
		session.AddDecal(kind)
		return nil
	})
}

func (s *service) UpdateDecal(ctx context.Context, sessionID, productSlug string, decalID int, patch DecalPatch) (*SessionDTO, error) {
	return s.mutate(ctx, sessionID, productSlug, func(session *Session) error {
		session.UpdateDecal(decalID, patch)
		return nil
	})
}

func (s *service) RemoveDecal(ctx context.Context, sessionID, productSlug string, decalID int) (*SessionDTO, error) {
	return s.mutate(ctx, sessionID, productSlug, func(session *Session) error {
		session.RemoveDecal(decalID)
		return nil
	})
}

func (s *service) SetActiveDecal(ctx context.Context, sessionID, productSlug string, decalID int) (*SessionDTO, error) {
	return s.mutate(ctx, sessionID, productSlug, func(session *Session) error {
		session.SetActiveDecal(decalID)
		return nil
	})
}

func (s *service) SelectColor(ctx context.Context, sessionID, productSlug, colorName string) (*SessionDTO, error) {
	product, err := s.products.GetProduct(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	var chosen *catalog.ColorDTO
	for i := range product.Colors {
		if product.Colors[i].Name == colorName {
			chosen = &product.Colors[i]
			break
		}
	}
	if chosen == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product has no color %q", colorName))
	}

	return s.mutate(ctx, sessionID, productSlug, func(session *Session) error {
		session.SelectColor(chosen.Name, chosen.Hex)
		return nil
	})
}

func (s *service) UploadLogo(ctx context.Context, sessionID, productSlug string, data []byte) (*SessionDTO, error) {
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logo file is empty")
	}
	if s.maxLogo > 0 && int64(len(data)) > s.maxLogo {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("logo exceeds %d bytes", s.maxLogo))
	}

	dataURI, err := encodeLogoDataURI(data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "logo must be a valid PNG, JPEG, or GIF image")
	}

	return s.mutate(ctx, sessionID, productSlug, func(session *Session) error {
		session.AddLogoDecal(dataURI)
		return nil
	})
}

func (s *service) Quote(ctx context.Context, sessionID, productSlug string, qty int) (*QuoteDTO, error) {
	session, product, err := s.loadSession(ctx, sessionID, productSlug)
	if err != nil {
		return nil, err
	}
	if product.Price == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "this product is priced on request")
	}

	if qty < 1 {
		qty = 1
	}
	decals := len(session.Decals)
	surcharge := DecalSurcharge(decals)
	unit := *product.Price + surcharge
	return &QuoteDTO{
		BasePrice:  *product.Price,
		Decals:     decals,
		Surcharge:  surcharge,
		Quantity:   qty,
		UnitPrice:  unit,
		TotalPrice: Total(*product.Price, decals, qty),
	}, nil
}

func (s *service) Reset(ctx context.Context, sessionID, productSlug string) error {
	if err := s.store.Delete(ctx, sessionID, productSlug); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reset customizer session")
	}
	return nil
}

func (s *service) mutate(ctx context.Context, sessionID, productSlug string, fn func(*Session) error) (*SessionDTO, error) {
	session, _, err := s.loadSession(ctx, sessionID, productSlug)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save customizer session")
	}
	return toSessionDTO(session), nil
}

// loadSession resolves the product first so a session is never created for an
// unknown or non-customizable listing.
func (s *service) loadSession(ctx context.Context, sessionID, productSlug string) (*Session, *catalog.ProductDTO, error) {
	product, err := s.products.GetProduct(ctx, productSlug)
	if err != nil {
		return nil, nil, err
	}
	if !product.Customizable {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "this product cannot be customized")
	}

	session, err := s.store.Load(ctx, sessionID, product.Slug)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customizer session")
	}
	if session == nil {
		session = NewSession(product.Slug)
	}
	return session, product, nil
}

func toSessionDTO(session *Session) *SessionDTO {
	return &SessionDTO{
		ProductSlug:   session.ProductSlug,
		ColorName:     session.ColorName,
		ColorHex:      session.ColorHex,
		Decals:        session.Decals,
		ActiveDecalID: session.ActiveDecalID,
		PrintSides:    session.PrintSides(),
		Snapshot:      session.Snapshot(),
	}
}

// encodeLogoDataURI decodes an uploaded image and re-encodes it as a PNG data
// URI. Re-encoding normalizes the payload and strips anything that is not
// pixel data.
func encodeLogoDataURI(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode logo: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
