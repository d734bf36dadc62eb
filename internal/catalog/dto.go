package catalog

import (
	"time"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db/models"
	"github.com/google/uuid"
)

// ProductDTO is the storefront representation of a catalog listing. Price is
// a pointer so floater balls can omit it from the payload entirely.
type ProductDTO struct {
	ID           uuid.UUID  `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        *int64     `json:"price,omitempty"`
	ImageURL     string     `json:"image_url"`
	Gallery      []string   `json:"gallery"`
	IsFloater    bool       `json:"is_floater"`
	Customizable bool       `json:"customizable"`
	IsActive     bool       `json:"is_active"`
	Colors       []ColorDTO `json:"colors"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ColorDTO is one selectable ball color.
type ColorDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Hex      string    `json:"hex"`
	ImageURL *string   `json:"image_url,omitempty"`
}

func toDTO(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}

	dto := &ProductDTO{
		ID:           product.ID,
		Slug:         product.Slug,
		Name:         product.Name,
		Description:  product.Description,
		ImageURL:     product.ImageURL,
		Gallery:      append([]string{}, product.Gallery...),
		IsFloater:    product.IsFloater,
		Customizable: product.Customizable,
		IsActive:     product.IsActive,
		Colors:       make([]ColorDTO, 0, len(product.Colors)),
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}

	// Floater balls never expose a price; the storefront shows a contact CTA.
	if !product.IsFloater {
		price := product.BasePrice
		dto.Price = &price
	}

	for _, color := range product.Colors {
		dto.Colors = append(dto.Colors, ColorDTO{
			ID:       color.ID,
			Name:     color.Name,
			Hex:      color.Hex,
			ImageURL: color.ImageURL,
		})
	}

	return dto
}
