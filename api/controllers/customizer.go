package controllers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/middleware"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/responses"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/validators"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/customizer"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
)

// GetCustomizerSession returns the current design for this browser session.
func GetCustomizerSession(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := svc.GetSession(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

type addDecalRequest struct {
	Kind string `json:"kind" validate:"required,oneof=logo text"`
}

// AddDecal places a new decal on the ball.
func AddDecal(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addDecalRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		kind, err := enums.ParseDecalKind(payload.Kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()))
			return
		}

		session, err := svc.AddDecal(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"), kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

type updateDecalRequest struct {
	ID    int                   `json:"id" validate:"required,gt=0"`
	Patch customizer.DecalPatch `json:"patch"`
}

// UpdateDecal merges a patch into one decal.
func UpdateDecal(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateDecalRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.UpdateDecal(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"), payload.ID, payload.Patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

type decalIDRequest struct {
	ID int `json:"id" validate:"gte=0"`
}

// RemoveDecal deletes one decal from the design.
func RemoveDecal(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload decalIDRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.RemoveDecal(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"), payload.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// SetActiveDecal selects a decal for editing; id 0 clears the selection.
func SetActiveDecal(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload decalIDRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.SetActiveDecal(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"), payload.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

type selectColorRequest struct {
	Color string `json:"color" validate:"required"`
}

// SelectColor picks one of the product's color variants.
func SelectColor(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload selectColorRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.SelectColor(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"), payload.Color)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// UploadLogo accepts a logo file upload and places it as a new decal. The
// file arrives as the "logo" part of a multipart form.
func UploadLogo(svc customizer.Service, maxBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes+4096)
		}

		file, _, err := r.FormFile("logo")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "logo file is required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "could not read logo file"))
			return
		}

		session, err := svc.UploadLogo(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"), data)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// QuoteCustomization prices the current design at a quantity.
func QuoteCustomization(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qty, err := validators.ParseQueryInt(r, "qty", 1, 1, 10_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"), qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// ResetCustomizer discards the stored design for this product.
func ResetCustomizer(svc customizer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "reset"})
	}
}
