package catalog

import (
	"context"
	"testing"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db/models"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRepo struct {
	products map[uuid.UUID]*models.Product
	bySlug   map[string]*models.Product
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		products: map[uuid.UUID]*models.Product{},
		bySlug:   map[string]*models.Product{},
	}
}

func (s *stubRepo) put(p *models.Product) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.products[p.ID] = p
	s.bySlug[p.Slug] = p
}

func (s *stubRepo) ListActive(context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAll(context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubRepo) FindBySlug(_ context.Context, slug string) (*models.Product, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	s.put(product)
	return product, nil
}

func (s *stubRepo) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	s.put(product)
	return product, nil
}

func (s *stubRepo) ReplaceColors(_ context.Context, productID uuid.UUID, colors []models.ProductColor) error {
	if p, ok := s.products[productID]; ok {
		p.Colors = colors
	}
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if p, ok := s.products[id]; ok {
		delete(s.bySlug, p.Slug)
	}
	delete(s.products, id)
	return nil
}

func newTestService(t *testing.T, repo ProductRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc
}

func TestGetProductOmitsPriceForFloater(t *testing.T) {
	repo := newStubRepo()
	repo.put(&models.Product{
		Slug:      "floater-ball",
		Name:      "Floater Ball",
		BasePrice: 85000,
		IsFloater: true,
		IsActive:  true,
	})
	repo.put(&models.Product{
		Slug:      "tournament-ball",
		Name:      "Tournament Ball",
		BasePrice: 95000,
		IsActive:  true,
	})

	svc := newTestService(t, repo)

	floater, err := svc.GetProduct(context.Background(), "floater-ball")
	require.NoError(t, err)
	require.Nil(t, floater.Price, "floater listings must not expose a price")

	regular, err := svc.GetProduct(context.Background(), "tournament-ball")
	require.NoError(t, err)
	require.NotNil(t, regular.Price)
	require.Equal(t, int64(95000), *regular.Price)
}

func TestGetProductHidesInactiveListing(t *testing.T) {
	repo := newStubRepo()
	repo.put(&models.Product{Slug: "retired-ball", Name: "Retired", IsActive: false})

	svc := newTestService(t, repo)

	_, err := svc.GetProduct(context.Background(), "retired-ball")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestCreateProductDerivesSlug(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(t, repo)

	dto, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:         "Golf Ball Premium 2 Layer",
		BasePrice:    120000,
		Customizable: true,
		IsActive:     true,
		Colors: []ColorInput{
			{Name: "White", Hex: "#ffffff"},
			{Name: "Yellow", Hex: "#ffe135"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "golf-ball-premium-2-layer", dto.Slug)
	require.Len(t, dto.Colors, 2)
	require.NotNil(t, dto.Price)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc := newTestService(t, newStubRepo())

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:      "Bad Ball",
		BasePrice: -1,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateProductPartialMutation(t *testing.T) {
	repo := newStubRepo()
	p := &models.Product{
		Slug:      "classic-ball",
		Name:      "Classic",
		BasePrice: 80000,
		IsActive:  true,
	}
	repo.put(p)

	svc := newTestService(t, repo)

	newPrice := int64(90000)
	inactive := false
	dto, err := svc.UpdateProduct(context.Background(), p.ID, UpdateProductInput{
		BasePrice: &newPrice,
		IsActive:  &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, "classic-ball", dto.Slug)
	require.NotNil(t, dto.Price)
	require.Equal(t, newPrice, *dto.Price)
	require.False(t, dto.IsActive)
}

func TestDeleteProductMissing(t *testing.T) {
	svc := newTestService(t, newStubRepo())

	err := svc.DeleteProduct(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Golf Ball Premium": "golf-ball-premium",
		"  Bola Golf!  ":    "bola-golf",
		"2-Layer (Custom)":  "2-layer-custom",
	}
	for input, want := range cases {
		require.Equal(t, want, Slugify(input))
	}
}
