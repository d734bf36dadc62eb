package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/sheets"
)

type stubLeadSheet struct {
	appendFn func(ctx context.Context, row sheets.LeadRow) error
	rows     []sheets.LeadRow
}

func (s *stubLeadSheet) AppendLead(ctx context.Context, row sheets.LeadRow) error {
	s.rows = append(s.rows, row)
	if s.appendFn != nil {
		return s.appendFn(ctx, row)
	}
	return nil
}

func TestSubmitLeadAppendsRow(t *testing.T) {
	sheet := &stubLeadSheet{}
	handler := SubmitLead(sheet, nil)

	body := `{"name":"Dewi","contact":"dewi@example.com","product_name":"Floater Practice Ball","note":"need 500 units"}`
	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body)))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(sheet.rows) != 1 {
		t.Fatalf("expected one appended row, got %d", len(sheet.rows))
	}
	row := sheet.rows[0]
	if row.Name != "Dewi" || row.Contact != "dewi@example.com" || row.ProductName != "Floater Practice Ball" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.ReceivedAt.IsZero() {
		t.Fatal("expected ReceivedAt to be stamped")
	}
}

func TestSubmitLeadRequiresContact(t *testing.T) {
	sheet := &stubLeadSheet{}
	handler := SubmitLead(sheet, nil)

	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(`{"name":"Dewi"}`)))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if len(sheet.rows) != 0 {
		t.Fatalf("expected no appended rows, got %d", len(sheet.rows))
	}
}

func TestSubmitLeadUnconfigured(t *testing.T) {
	handler := SubmitLead(nil, nil)

	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(`{"name":"Dewi","contact":"x"}`)))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}
