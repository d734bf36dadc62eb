package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/auth"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/users"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
)

type stubAuth struct {
	registerFn func(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error)
	loginFn    func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	refreshFn  func(ctx context.Context, req auth.RefreshRequest) (*auth.TokenPair, error)
	logoutFn   func(ctx context.Context, accessID string) error
}

func (s stubAuth) Register(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, req)
	}
	return &auth.LoginResponse{}, nil
}

func (s stubAuth) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return &auth.LoginResponse{}, nil
}

func (s stubAuth) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.TokenPair, error) {
	if s.refreshFn != nil {
		return s.refreshFn(ctx, req)
	}
	return &auth.TokenPair{}, nil
}

func (s stubAuth) Logout(ctx context.Context, accessID string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, accessID)
	}
	return nil
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterReturnsCreated(t *testing.T) {
	svc := stubAuth{
		registerFn: func(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error) {
			if req.Email != "golfer@example.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			return &auth.LoginResponse{
				User:   &users.UserDTO{Email: req.Email},
				Tokens: auth.TokenPair{AccessToken: "at", RefreshToken: "rt"},
			}, nil
		},
	}

	handler := Register(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/auth/register", `{"email":"golfer@example.com","password":"secret-pw-1","full_name":"Golfer"}`))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data auth.LoginResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Tokens.AccessToken != "at" {
		t.Fatalf("expected token in payload, got %+v", envelope.Data)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	handler := Register(stubAuth{}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/auth/register", `{"email":"golfer@example.com","password":"short","full_name":"Golfer"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLoginMapsUnauthorized(t *testing.T) {
	svc := stubAuth{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}

	handler := Login(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/auth/login", `{"email":"golfer@example.com","password":"wrong-password"}`))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRefreshPassesTokens(t *testing.T) {
	var gotRefresh string
	svc := stubAuth{
		refreshFn: func(ctx context.Context, req auth.RefreshRequest) (*auth.TokenPair, error) {
			gotRefresh = req.RefreshToken
			return &auth.TokenPair{AccessToken: "new-at", RefreshToken: "new-rt"}, nil
		},
	}

	handler := Refresh(svc, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/auth/refresh", `{"access_token":"old-at","refresh_token":"old-rt"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotRefresh != "old-rt" {
		t.Fatalf("expected refresh token passthrough, got %q", gotRefresh)
	}
}

func TestLogoutWithoutAccessID(t *testing.T) {
	handler := Logout(stubAuth{}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
