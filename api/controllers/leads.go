package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/responses"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/validators"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/sheets"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
)

// LeadSheet receives price-on-request inquiries. *sheets.Logger satisfies it.
type LeadSheet interface {
	AppendLead(ctx context.Context, row sheets.LeadRow) error
}

type leadRequest struct {
	Name        string `json:"name" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
	ProductName string `json:"product_name"`
	Note        string `json:"note" validate:"max=2000"`
}

// SubmitLead records a quote request for products sold without a listed
// price. The row lands in the shop team's leads sheet.
func SubmitLead(sheet LeadSheet, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sheet == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "quote requests are not configured"))
			return
		}

		var payload leadRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row := sheets.LeadRow{
			ReceivedAt:  time.Now().UTC(),
			Name:        payload.Name,
			Contact:     payload.Contact,
			ProductName: payload.ProductName,
			Note:        payload.Note,
		}
		if err := sheet.AppendLead(r.Context(), row); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record quote request"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"status": "received"})
	}
}
