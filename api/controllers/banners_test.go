package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/banners"
)

type stubBanners struct {
	listFn   func(ctx context.Context) ([]banners.BannerDTO, error)
	createFn func(ctx context.Context, input banners.CreateBannerInput) (*banners.BannerDTO, error)
	updateFn func(ctx context.Context, id uuid.UUID, input banners.UpdateBannerInput) (*banners.BannerDTO, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s stubBanners) ListBanners(ctx context.Context) ([]banners.BannerDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s stubBanners) ListAllBanners(ctx context.Context) ([]banners.BannerDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s stubBanners) CreateBanner(ctx context.Context, input banners.CreateBannerInput) (*banners.BannerDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return &banners.BannerDTO{}, nil
}

func (s stubBanners) UpdateBanner(ctx context.Context, id uuid.UUID, input banners.UpdateBannerInput) (*banners.BannerDTO, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, input)
	}
	return &banners.BannerDTO{}, nil
}

func (s stubBanners) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func TestListBanners(t *testing.T) {
	svc := stubBanners{
		listFn: func(ctx context.Context) ([]banners.BannerDTO, error) {
			return []banners.BannerDTO{{Title: "Summer Sale", Position: 1}}, nil
		},
	}

	handler := ListBanners(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/banners", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAdminCreateBannerRequiresTitle(t *testing.T) {
	handler := AdminCreateBanner(stubBanners{}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/admin/banners", `{"image_url":"https://cdn.example.com/banner.png"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminCreateBannerReturnsCreated(t *testing.T) {
	svc := stubBanners{
		createFn: func(ctx context.Context, input banners.CreateBannerInput) (*banners.BannerDTO, error) {
			return &banners.BannerDTO{Title: input.Title}, nil
		},
	}

	handler := AdminCreateBanner(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/admin/banners", `{"title":"Summer Sale","image_url":"https://cdn.example.com/banner.png","is_active":true}`))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminDeleteBannerRejectsBadID(t *testing.T) {
	handler := AdminDeleteBanner(stubBanners{}, nil)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/admin/banners/nope", nil), "id", "nope")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
