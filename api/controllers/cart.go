package controllers

import (
	"net/http"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/middleware"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/responses"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/validators"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/cart"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// GetCart returns the session's cart with line totals and subtotal.
func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		basket, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, basket)
	}
}

type addCartItemRequest struct {
	ProductSlug   string              `json:"product_slug" validate:"required"`
	Quantity      int                 `json:"quantity"`
	Customization types.Customization `json:"customization"`
}

// AddCartItem adds a design at a quantity, merging with an identical line.
func AddCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		basket, err := svc.Add(r.Context(), middleware.SessionIDFromContext(r.Context()), payload.ProductSlug, payload.Customization, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, basket)
	}
}

type updateCartItemRequest struct {
	ItemKey  string `json:"item_key" validate:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItem sets a line's quantity. Zero keeps the line so the shopper
// can restore it without losing the design.
func UpdateCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		basket, err := svc.UpdateQuantity(r.Context(), middleware.SessionIDFromContext(r.Context()), payload.ItemKey, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, basket)
	}
}

type removeCartItemRequest struct {
	ItemKey string `json:"item_key" validate:"required"`
}

// RemoveCartItem deletes a line from the cart.
func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload removeCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		basket, err := svc.Remove(r.Context(), middleware.SessionIDFromContext(r.Context()), payload.ItemKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, basket)
	}
}

// ClearCart empties the session's cart.
func ClearCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context(), middleware.SessionIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
