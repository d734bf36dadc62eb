package controllers

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/composite"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/customizer"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

func testBuilder(t *testing.T) *composite.Builder {
	t.Helper()
	base := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			base.Set(x, y, color.White)
		}
	}
	builder, err := composite.NewBuilder(base, nil, nil)
	if err != nil {
		t.Fatalf("build composite builder: %v", err)
	}
	return builder
}

func TestBuildPreviewReturnsDataURI(t *testing.T) {
	svc := &stubCustomizer{
		getFn: func(ctx context.Context, sessionID, slug string) (*customizer.SessionDTO, error) {
			return &customizer.SessionDTO{
				ProductSlug: slug,
				Snapshot: types.Customization{
					Front: types.SideCustomization{Kind: enums.SideKindText, Content: "ACME", Color: "#000000"},
				},
			}, nil
		},
	}

	handler := BuildPreview(svc, testBuilder(t), nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/preview", `{"angle":"top-down"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data previewResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Angle != "top-down" {
		t.Fatalf("expected angle echo, got %q", envelope.Data.Angle)
	}
	if !strings.HasPrefix(envelope.Data.PreviewImage, "data:image/png;base64,") {
		t.Fatalf("expected png data uri, got %q", envelope.Data.PreviewImage[:32])
	}
}

func TestBuildPreviewRejectsUnknownAngle(t *testing.T) {
	handler := BuildPreview(&stubCustomizer{}, testBuilder(t), nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/preview", `{"angle":"overhead"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestEnhancePreviewUnconfigured(t *testing.T) {
	handler := EnhancePreview(&stubCustomizer{}, testBuilder(t), nil, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/customizer/tournament-ball/preview/enhance", `{"angle":"side","lighting":"sunny"}`))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}
