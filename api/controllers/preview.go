package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/middleware"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/responses"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/validators"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/aiimage"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/composite"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/customizer"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
)

type previewRequest struct {
	Angle string `json:"angle" validate:"required,oneof=top-down side"`
}

type previewResponse struct {
	Angle        string `json:"angle"`
	PreviewImage string `json:"preview_image"`
}

// BuildPreview flattens the current design onto the base ball photo. Only one
// render runs per process at a time; overlapping requests are dropped with a
// conflict so the client simply retries on the next interaction.
func BuildPreview(svc customizer.Service, builder *composite.Builder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload previewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		angle, err := enums.ParseViewAngle(payload.Angle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()))
			return
		}

		session, err := svc.GetSession(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		img, err := builder.Build(session.Snapshot, angle)
		if err != nil {
			if errors.Is(err, composite.ErrRenderInFlight) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "a preview render is already in progress"))
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, previewResponse{Angle: angle.String(), PreviewImage: img})
	}
}

type enhanceRequest struct {
	Angle    string `json:"angle" validate:"required,oneof=top-down side"`
	Lighting string `json:"lighting" validate:"required,oneof=sunny overcast indoor"`
}

// EnhancePreview runs the flattened composite through the external image
// generator. This only happens on an explicit user action, never on every
// design edit.
func EnhancePreview(svc customizer.Service, builder *composite.Builder, ai *aiimage.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ai == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "preview enhancement is not configured"))
			return
		}

		var payload enhanceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		angle, err := enums.ParseViewAngle(payload.Angle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()))
			return
		}
		lighting, err := enums.ParseLighting(payload.Lighting)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()))
			return
		}

		session, err := svc.GetSession(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		img, err := builder.Build(session.Snapshot, angle)
		if err != nil {
			if errors.Is(err, composite.ErrRenderInFlight) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "a preview render is already in progress"))
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		generated, err := ai.Generate(r.Context(), aiimage.GenerateRequest{
			BaseImage: img,
			Lighting:  lighting,
			Angle:     angle,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, previewResponse{Angle: angle.String(), PreviewImage: generated.PreviewImage})
	}
}
