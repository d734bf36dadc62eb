package controllers

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/middleware"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/customizer"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
)

type stubCustomizer struct {
	getFn        func(ctx context.Context, sessionID, slug string) (*customizer.SessionDTO, error)
	addFn        func(ctx context.Context, sessionID, slug string, kind enums.DecalKind) (*customizer.SessionDTO, error)
	updateFn     func(ctx context.Context, sessionID, slug string, decalID int, patch customizer.DecalPatch) (*customizer.SessionDTO, error)
	uploadFn     func(ctx context.Context, sessionID, slug string, data []byte) (*customizer.SessionDTO, error)
	quoteFn      func(ctx context.Context, sessionID, slug string, qty int) (*customizer.QuoteDTO, error)
	lastDecalID  int
	lastColor    string
	resetCalled  bool
	removeCalled bool
}

func (s *stubCustomizer) GetSession(ctx context.Context, sessionID, slug string) (*customizer.SessionDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, sessionID, slug)
	}
	return &customizer.SessionDTO{ProductSlug: slug}, nil
}

func (s *stubCustomizer) AddDecal(ctx context.Context, sessionID, slug string, kind enums.DecalKind) (*customizer.SessionDTO, error) {
	if s.addFn != nil {
		return s.addFn(ctx, sessionID, slug, kind)
	}
	return &customizer.SessionDTO{ProductSlug: slug}, nil
}

func (s *stubCustomizer) UpdateDecal(ctx context.Context, sessionID, slug string, decalID int, patch customizer.DecalPatch) (*customizer.SessionDTO, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, sessionID, slug, decalID, patch)
	}
	s.lastDecalID = decalID
	return &customizer.SessionDTO{ProductSlug: slug}, nil
}

func (s *stubCustomizer) RemoveDecal(ctx context.Context, sessionID, slug string, decalID int) (*customizer.SessionDTO, error) {
	s.removeCalled = true
	s.lastDecalID = decalID
	return &customizer.SessionDTO{ProductSlug: slug}, nil
}

func (s *stubCustomizer) SetActiveDecal(ctx context.Context, sessionID, slug string, decalID int) (*customizer.SessionDTO, error) {
	s.lastDecalID = decalID
	return &customizer.SessionDTO{ProductSlug: slug}, nil
}

func (s *stubCustomizer) SelectColor(ctx context.Context, sessionID, slug, colorName string) (*customizer.SessionDTO, error) {
	s.lastColor = colorName
	return &customizer.SessionDTO{ProductSlug: slug, ColorName: colorName}, nil
}

func (s *stubCustomizer) UploadLogo(ctx context.Context, sessionID, slug string, data []byte) (*customizer.SessionDTO, error) {
	if s.uploadFn != nil {
		return s.uploadFn(ctx, sessionID, slug, data)
	}
	return &customizer.SessionDTO{ProductSlug: slug}, nil
}

func (s *stubCustomizer) Quote(ctx context.Context, sessionID, slug string, qty int) (*customizer.QuoteDTO, error) {
	if s.quoteFn != nil {
		return s.quoteFn(ctx, sessionID, slug, qty)
	}
	return &customizer.QuoteDTO{Quantity: qty}, nil
}

func (s *stubCustomizer) Reset(ctx context.Context, sessionID, slug string) error {
	s.resetCalled = true
	return nil
}

func sessionRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(middleware.WithSessionID(req.Context(), "sess-1"))
	return withURLParam(req, "slug", "tournament-ball")
}

func TestAddDecalParsesKind(t *testing.T) {
	var gotKind enums.DecalKind
	var gotSession string
	svc := &stubCustomizer{
		addFn: func(ctx context.Context, sessionID, slug string, kind enums.DecalKind) (*customizer.SessionDTO, error) {
			gotSession = sessionID
			gotKind = kind
			return &customizer.SessionDTO{ProductSlug: slug}, nil
		},
	}

	handler := AddDecal(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/decals", `{"kind":"text"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotKind != enums.DecalKindText {
		t.Fatalf("expected text kind got %q", gotKind)
	}
	if gotSession != "sess-1" {
		t.Fatalf("expected session sess-1 got %q", gotSession)
	}
}

func TestAddDecalRejectsUnknownKind(t *testing.T) {
	handler := AddDecal(&stubCustomizer{}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/decals", `{"kind":"sticker"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateDecalPassesPatch(t *testing.T) {
	var gotID int
	var gotPatch customizer.DecalPatch
	svc := &stubCustomizer{
		updateFn: func(ctx context.Context, sessionID, slug string, decalID int, patch customizer.DecalPatch) (*customizer.SessionDTO, error) {
			gotID = decalID
			gotPatch = patch
			return &customizer.SessionDTO{ProductSlug: slug}, nil
		},
	}

	handler := UpdateDecal(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPatch, "/customizer/tournament-ball/decals", `{"id":2,"patch":{"content":"ACME","scale":0.4}}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotID != 2 {
		t.Fatalf("expected decal 2 got %d", gotID)
	}
	if gotPatch.Content == nil || *gotPatch.Content != "ACME" {
		t.Fatalf("expected content patch, got %+v", gotPatch)
	}
	if gotPatch.Scale == nil || *gotPatch.Scale != 0.4 {
		t.Fatalf("expected scale patch, got %+v", gotPatch)
	}
}

func TestSetActiveDecalAllowsZero(t *testing.T) {
	svc := &stubCustomizer{}
	handler := SetActiveDecal(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/active-decal", `{"id":0}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastDecalID != 0 {
		t.Fatalf("expected id 0 got %d", svc.lastDecalID)
	}
}

func TestSelectColor(t *testing.T) {
	svc := &stubCustomizer{}
	handler := SelectColor(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/color", `{"color":"Neon Yellow"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastColor != "Neon Yellow" {
		t.Fatalf("expected color passthrough, got %q", svc.lastColor)
	}
}

func TestUploadLogoMultipart(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logo", "logo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(pngBuf.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	var gotBytes int
	svc := &stubCustomizer{
		uploadFn: func(ctx context.Context, sessionID, slug string, data []byte) (*customizer.SessionDTO, error) {
			gotBytes = len(data)
			return &customizer.SessionDTO{ProductSlug: slug}, nil
		},
	}

	handler := UploadLogo(svc, 1<<20, nil)
	req := httptest.NewRequest(http.MethodPost, "/customizer/tournament-ball/logo", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = req.WithContext(middleware.WithSessionID(req.Context(), "sess-1"))
	req = withURLParam(req, "slug", "tournament-ball")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotBytes != pngBuf.Len() {
		t.Fatalf("expected %d bytes got %d", pngBuf.Len(), gotBytes)
	}
}

func TestUploadLogoMissingFile(t *testing.T) {
	handler := UploadLogo(&stubCustomizer{}, 1<<20, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/logo", ""))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteDefaultsQuantity(t *testing.T) {
	var gotQty int
	svc := &stubCustomizer{
		quoteFn: func(ctx context.Context, sessionID, slug string, qty int) (*customizer.QuoteDTO, error) {
			gotQty = qty
			return &customizer.QuoteDTO{Quantity: qty}, nil
		},
	}

	handler := QuoteCustomization(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodGet, "/customizer/tournament-ball/quote", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotQty != 1 {
		t.Fatalf("expected default quantity 1 got %d", gotQty)
	}
}

func TestResetCustomizer(t *testing.T) {
	svc := &stubCustomizer{}
	handler := ResetCustomizer(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodDelete, "/customizer/tournament-ball", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !svc.resetCalled {
		t.Fatal("expected reset to be called")
	}
}
