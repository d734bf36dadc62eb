package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/responses"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/validators"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/catalog"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
)

// ListProducts returns the active storefront catalog.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// GetProduct returns one active listing by slug.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type colorRequest struct {
	Name     string  `json:"name" validate:"required"`
	Hex      string  `json:"hex" validate:"required"`
	ImageURL *string `json:"image_url,omitempty"`
}

type createProductRequest struct {
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description"`
	BasePrice    int64          `json:"base_price" validate:"gte=0"`
	ImageURL     string         `json:"image_url"`
	Gallery      []string       `json:"gallery"`
	IsFloater    bool           `json:"is_floater"`
	Customizable bool           `json:"customizable"`
	IsActive     bool           `json:"is_active"`
	Colors       []colorRequest `json:"colors" validate:"dive"`
}

type updateProductRequest struct {
	Slug         *string         `json:"slug,omitempty"`
	Name         *string         `json:"name,omitempty"`
	Description  *string         `json:"description,omitempty"`
	BasePrice    *int64          `json:"base_price,omitempty" validate:"omitempty,gte=0"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Gallery      *[]string       `json:"gallery,omitempty"`
	IsFloater    *bool           `json:"is_floater,omitempty"`
	Customizable *bool           `json:"customizable,omitempty"`
	IsActive     *bool           `json:"is_active,omitempty"`
	Colors       *[]colorRequest `json:"colors,omitempty" validate:"omitempty,dive"`
}

func mapColors(in []colorRequest) []catalog.ColorInput {
	out := make([]catalog.ColorInput, 0, len(in))
	for _, c := range in {
		out = append(out, catalog.ColorInput{Name: c.Name, Hex: c.Hex, ImageURL: c.ImageURL})
	}
	return out
}

// AdminListProducts returns every listing, active or not.
func AdminListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListAllProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// AdminCreateProduct creates a listing.
func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), catalog.CreateProductInput{
			Name:         payload.Name,
			Description:  payload.Description,
			BasePrice:    payload.BasePrice,
			ImageURL:     payload.ImageURL,
			Gallery:      payload.Gallery,
			IsFloater:    payload.IsFloater,
			Customizable: payload.Customizable,
			IsActive:     payload.IsActive,
			Colors:       mapColors(payload.Colors),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies partial changes to a listing.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := catalog.UpdateProductInput{
			Slug:         payload.Slug,
			Name:         payload.Name,
			Description:  payload.Description,
			BasePrice:    payload.BasePrice,
			ImageURL:     payload.ImageURL,
			Gallery:      payload.Gallery,
			IsFloater:    payload.IsFloater,
			Customizable: payload.Customizable,
			IsActive:     payload.IsActive,
		}
		if payload.Colors != nil {
			colors := mapColors(*payload.Colors)
			input.Colors = &colors
		}

		product, err := svc.UpdateProduct(r.Context(), productID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a listing.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
			return
		}

		if err := svc.DeleteProduct(r.Context(), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
