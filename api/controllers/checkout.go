package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/middleware"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/responses"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/validators"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/checkout"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
)

type checkoutRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	ShippingAddr string `json:"shipping_address" validate:"required"`
}

// Checkout converts the session's cart into a placed order.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), userID, middleware.SessionIDFromContext(r.Context()), checkout.CustomerInput{
			Name:         payload.Name,
			Email:        payload.Email,
			Phone:        payload.Phone,
			ShippingAddr: payload.ShippingAddr,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
