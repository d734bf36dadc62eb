package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/middleware"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/orders"
)

type stubOrders struct {
	getFn          func(ctx context.Context, userID, orderID uuid.UUID) (*orders.OrderDTO, error)
	listFn         func(ctx context.Context, userID uuid.UUID) ([]orders.OrderDTO, error)
	listAllFn      func(ctx context.Context) ([]orders.OrderDTO, error)
	getAdminFn     func(ctx context.Context, orderID uuid.UUID) (*orders.OrderDTO, error)
	updateStatusFn func(ctx context.Context, orderID uuid.UUID, status string) (*orders.OrderDTO, error)
}

func (s stubOrders) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*orders.OrderDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID, orderID)
	}
	return &orders.OrderDTO{}, nil
}

func (s stubOrders) ListOrders(ctx context.Context, userID uuid.UUID) ([]orders.OrderDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}

func (s stubOrders) ListAllOrders(ctx context.Context) ([]orders.OrderDTO, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx)
	}
	return nil, nil
}

func (s stubOrders) GetOrderAdmin(ctx context.Context, orderID uuid.UUID) (*orders.OrderDTO, error) {
	if s.getAdminFn != nil {
		return s.getAdminFn(ctx, orderID)
	}
	return &orders.OrderDTO{}, nil
}

func (s stubOrders) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*orders.OrderDTO, error) {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, orderID, status)
	}
	return &orders.OrderDTO{}, nil
}

func (s stubOrders) NextInvoiceNumber(ctx context.Context, repo orders.OrderRepository, now time.Time) (string, error) {
	return "", nil
}

func TestListMyOrdersRequiresUser(t *testing.T) {
	handler := ListMyOrders(stubOrders{}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/orders", nil))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestListMyOrdersPassesUserID(t *testing.T) {
	userID := uuid.New()
	var gotUser uuid.UUID
	svc := stubOrders{
		listFn: func(ctx context.Context, id uuid.UUID) ([]orders.OrderDTO, error) {
			gotUser = id
			return []orders.OrderDTO{{InvoiceNumber: "INV/20260828/1"}}, nil
		},
	}

	handler := ListMyOrders(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotUser != userID {
		t.Fatalf("expected user %s got %s", userID, gotUser)
	}
}

func TestGetMyOrderRejectsBadID(t *testing.T) {
	handler := GetMyOrder(stubOrders{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/orders/nope", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	req = withURLParam(req, "id", "nope")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()
	var gotStatus string
	svc := stubOrders{
		updateStatusFn: func(ctx context.Context, id uuid.UUID, status string) (*orders.OrderDTO, error) {
			if id != orderID {
				t.Fatalf("expected order %s got %s", orderID, id)
			}
			gotStatus = status
			return &orders.OrderDTO{ID: id}, nil
		},
	}

	handler := AdminUpdateOrderStatus(svc, nil)
	req := jsonRequest(http.MethodPatch, "/admin/orders/"+orderID.String()+"/status", `{"status":"shipped"}`)
	req = withURLParam(req, "id", orderID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotStatus != "shipped" {
		t.Fatalf("expected status shipped got %q", gotStatus)
	}
}

func TestAdminListOrders(t *testing.T) {
	svc := stubOrders{
		listAllFn: func(ctx context.Context) ([]orders.OrderDTO, error) {
			return []orders.OrderDTO{{InvoiceNumber: "INV/20260828/1"}, {InvoiceNumber: "INV/20260828/2"}}, nil
		},
	}

	handler := AdminListOrders(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
