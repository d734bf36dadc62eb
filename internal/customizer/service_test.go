package customizer

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/catalog"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/config"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	redispkg "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/redis"
	"github.com/stretchr/testify/require"
)

type memoryBlobStore struct {
	data map[string]string
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{data: map[string]string{}}
}

func (m *memoryBlobStore) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", redispkg.ErrNil
	}
	return v, nil
}

func (m *memoryBlobStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.data[key] = value.(string)
	return nil
}

func (m *memoryBlobStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type testKeyer struct{}

func (testKeyer) CustomizerKey(sessionID, productSlug string) string {
	return "gb:customizer:" + sessionID + ":" + productSlug
}

type stubProducts struct {
	bySlug map[string]*catalog.ProductDTO
}

func (s *stubProducts) GetProduct(_ context.Context, slug string) (*catalog.ProductDTO, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

func ptrInt64(v int64) *int64 { return &v }

func newTestService(t *testing.T) (Service, *memoryBlobStore) {
	t.Helper()

	blob := newMemoryBlobStore()
	store, err := NewStore(blob, testKeyer{}, time.Hour)
	require.NoError(t, err)

	products := &stubProducts{bySlug: map[string]*catalog.ProductDTO{
		"tournament-ball": {
			Slug:         "tournament-ball",
			Name:         "Tournament Ball",
			Price:        ptrInt64(95_000),
			Customizable: true,
			IsActive:     true,
			Colors: []catalog.ColorDTO{
				{Name: "White", Hex: "#ffffff"},
				{Name: "Yellow", Hex: "#ffe135"},
			},
		},
		"floater-ball": {
			Slug:         "floater-ball",
			Name:         "Floater Ball",
			IsFloater:    true,
			Customizable: true,
			IsActive:     true,
		},
		"range-ball": {
			Slug:         "range-ball",
			Name:         "Range Ball",
			Price:        ptrInt64(40_000),
			Customizable: false,
			IsActive:     true,
		},
	}}

	svc, err := NewService(products, store, config.CustomizerConfig{
		SessionTTL:   time.Hour,
		MaxLogoBytes: 1 << 20,
	})
	require.NoError(t, err)
	return svc, blob
}

func TestSessionPersistsAcrossCalls(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddDecal(ctx, "sess-1", "tournament-ball", enums.DecalKindText)
	require.NoError(t, err)
	require.Len(t, first.Decals, 1)

	reloaded, err := svc.GetSession(ctx, "sess-1", "tournament-ball")
	require.NoError(t, err)
	require.Len(t, reloaded.Decals, 1)
	require.Equal(t, first.Decals[0].ID, reloaded.ActiveDecalID)
}

func TestSessionsAreIsolatedPerBrowser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddDecal(ctx, "sess-a", "tournament-ball", enums.DecalKindText)
	require.NoError(t, err)

	other, err := svc.GetSession(ctx, "sess-b", "tournament-ball")
	require.NoError(t, err)
	require.Empty(t, other.Decals)
}

func TestAddDecalRejectsUnknownKind(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddDecal(context.Background(), "sess-1", "tournament-ball", enums.DecalKind("sticker"))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestNonCustomizableProductRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetSession(context.Background(), "sess-1", "range-ball")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSelectColorValidatesVariant(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dto, err := svc.SelectColor(ctx, "sess-1", "tournament-ball", "Yellow")
	require.NoError(t, err)
	require.Equal(t, "Yellow", dto.ColorName)
	require.Equal(t, "#ffe135", dto.ColorHex)

	_, err = svc.SelectColor(ctx, "sess-1", "tournament-ball", "Magenta")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUploadLogoEmbedsPNGDataURI(t *testing.T) {
	svc, _ := newTestService(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	dto, err := svc.UploadLogo(context.Background(), "sess-1", "tournament-ball", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, dto.Decals, 1)
	require.Equal(t, enums.DecalKindLogo, dto.Decals[0].Kind)
	require.True(t, strings.HasPrefix(dto.Decals[0].Content, "data:image/png;base64,"))
}

func TestUploadLogoRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadLogo(context.Background(), "sess-1", "tournament-ball", []byte("not an image"))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestQuoteBreakdown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddDecal(ctx, "sess-1", "tournament-ball", enums.DecalKindText)
	require.NoError(t, err)
	_, err = svc.AddDecal(ctx, "sess-1", "tournament-ball", enums.DecalKindText)
	require.NoError(t, err)

	quote, err := svc.Quote(ctx, "sess-1", "tournament-ball", 3)
	require.NoError(t, err)
	require.Equal(t, int64(95_000), quote.BasePrice)
	require.Equal(t, 2, quote.Decals)
	require.Equal(t, int64(40_000), quote.Surcharge)
	require.Equal(t, int64(135_000), quote.UnitPrice)
	require.Equal(t, int64(405_000), quote.TotalPrice)
}

func TestQuoteClampsQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	quote, err := svc.Quote(context.Background(), "sess-1", "tournament-ball", -2)
	require.NoError(t, err)
	require.Equal(t, 1, quote.Quantity)
	require.Equal(t, int64(95_000), quote.TotalPrice)
}

func TestQuoteFloaterPricedOnRequest(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Quote(context.Background(), "sess-1", "floater-ball", 1)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestResetDropsStoredSession(t *testing.T) {
	svc, blob := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddDecal(ctx, "sess-1", "tournament-ball", enums.DecalKindText)
	require.NoError(t, err)
	require.NotEmpty(t, blob.data)

	require.NoError(t, svc.Reset(ctx, "sess-1", "tournament-ball"))
	require.Empty(t, blob.data)
}
