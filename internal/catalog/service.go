package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db/models"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes catalog browsing and admin product management.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, slug string) (*ProductDTO, error)
	ListAllProducts(ctx context.Context) ([]ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// CreateProductInput holds the validated payload to create a listing.
type CreateProductInput struct {
	Slug         string
	Name         string
	Description  string
	BasePrice    int64
	ImageURL     string
	Gallery      []string
	IsFloater    bool
	Customizable bool
	IsActive     bool
	Colors       []ColorInput
}

// ColorInput defines one selectable ball color variant.
type ColorInput struct {
	Name     string
	Hex      string
	ImageURL *string
}

// UpdateProductInput holds optional mutation values for a listing.
type UpdateProductInput struct {
	Slug         *string
	Name         *string
	Description  *string
	BasePrice    *int64
	ImageURL     *string
	Gallery      *[]string
	IsFloater    *bool
	Customizable *bool
	IsActive     *bool
	Colors       *[]ColorInput
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

type service struct {
	repo ProductRepository
}

// NewService constructs the catalog service.
func NewService(repo ProductRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// ListProducts returns active listings for the storefront.
func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return mapDTOs(rows), nil
}

// GetProduct resolves one listing by slug.
func (s *service) GetProduct(ctx context.Context, slug string) (*ProductDTO, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}

	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	return toDTO(product), nil
}

// ListAllProducts returns every listing for the admin panel.
func (s *service) ListAllProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return mapDTOs(rows), nil
}

// CreateProduct inserts a listing with its color variants.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.BasePrice < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_price cannot be negative")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug could not be derived from name")
	}

	product := &models.Product{
		Slug:         slug,
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		BasePrice:    input.BasePrice,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Gallery:      input.Gallery,
		IsFloater:    input.IsFloater,
		Customizable: input.Customizable,
		IsActive:     input.IsActive,
	}
	for _, c := range input.Colors {
		product.Colors = append(product.Colors, models.ProductColor{
			Name:     strings.TrimSpace(c.Name),
			Hex:      strings.TrimSpace(c.Hex),
			ImageURL: c.ImageURL,
		})
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "idx_products_slug") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return toDTO(created), nil
}

// UpdateProduct applies partial changes to a listing.
func (s *service) UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if input.Slug != nil {
		slug := Slugify(*input.Slug)
		if slug == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug cannot be empty")
		}
		product.Slug = slug
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.BasePrice != nil {
		if *input.BasePrice < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_price cannot be negative")
		}
		product.BasePrice = *input.BasePrice
	}
	if input.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Gallery != nil {
		product.Gallery = *input.Gallery
	}
	if input.IsFloater != nil {
		product.IsFloater = *input.IsFloater
	}
	if input.Customizable != nil {
		product.Customizable = *input.Customizable
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "idx_products_slug") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}

	if input.Colors != nil {
		colors := make([]models.ProductColor, 0, len(*input.Colors))
		for _, c := range *input.Colors {
			colors = append(colors, models.ProductColor{
				ProductID: updated.ID,
				Name:      strings.TrimSpace(c.Name),
				Hex:       strings.TrimSpace(c.Hex),
				ImageURL:  c.ImageURL,
			})
		}
		if err := s.repo.ReplaceColors(ctx, updated.ID, colors); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace product colors")
		}
		updated.Colors = colors
	}

	return toDTO(updated), nil
}

// DeleteProduct removes the listing and its colors.
func (s *service) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if err := s.repo.Delete(ctx, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

// Slugify lowercases the value and collapses non-alphanumeric runs to hyphens.
func Slugify(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = slugRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func mapDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
