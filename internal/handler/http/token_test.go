// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

func postJSON(h *Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestObtainToken(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginFn    func(ctx context.Context, creds models.Credentials) (models.User, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid credentials",
			body: `{"username":"alice","password":"secret-pass"}`,
			loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
				return models.User{ID: 42, Username: creds.Username}, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"access":"access-42","refresh":"refresh-42"}`,
		},
		{
			name: "wrong credentials",
			body: `{"username":"alice","password":"nope"}`,
			loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
				return models.User{}, service.ErrWrongCredentials
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"No active account found with the given credentials"}`,
		},
		{
			name: "missing fields",
			body: `{}`,
			loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
				return models.User{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided,
					validators.FieldErrors{"username": {validators.MsgRequired}, "password": {validators.MsgRequired}})
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"username":["This field is required."],"password":["This field is required."]}`,
		},
		{
			name:       "malformed JSON",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWithServices(&service.Services{
				AuthService: &mockAuthService{loginFn: tt.loginFn},
				TokenService: &mockTokenService{
					issuePairFn: func(_ context.Context, user models.User) (models.TokenPair, error) {
						return models.TokenPair{
							Access:  fmt.Sprintf("access-%d", user.ID),
							Refresh: fmt.Sprintf("refresh-%d", user.ID),
						}, nil
					},
				},
			})

			rr := postJSON(h, "/api/token/", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestObtainToken_OversizedBody(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			t.Error("login must not run for an oversized body")
			return models.User{}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	body := `{"username":"` + strings.Repeat("a", maxRequestBodyBytes) + `","password":"secret"}`
	rr := postJSON(h, "/api/token/", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRefreshToken(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		refreshFn  func(ctx context.Context, refresh string) (string, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid refresh token",
			body:       `{"refresh":"good"}`,
			refreshFn:  func(_ context.Context, _ string) (string, error) { return "new-access", nil },
			wantStatus: http.StatusOK,
			wantBody:   `{"access":"new-access"}`,
		},
		{
			name:       "expired refresh token",
			body:       `{"refresh":"old"}`,
			refreshFn:  func(_ context.Context, _ string) (string, error) { return "", service.ErrTokenIsExpired },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Token is invalid or expired","code":"token_not_valid"}`,
		},
		{
			name:       "access token presented",
			body:       `{"refresh":"access"}`,
			refreshFn:  func(_ context.Context, _ string) (string, error) { return "", service.ErrWrongTokenType },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing refresh",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"refresh":["This field is required."]}`,
		},
		{
			name:       "lookup failure",
			body:       `{"refresh":"good"}`,
			refreshFn:  func(_ context.Context, _ string) (string, error) { return "", service.ErrIdentityLookupFailed },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWithServices(&service.Services{
				TokenService: &mockTokenService{refreshFn: tt.refreshFn},
			})

			rr := postJSON(h, "/api/token/refresh/", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestVerifyToken(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{
		TokenService: &mockTokenService{
			validateFn: func(_ context.Context, raw string) error {
				if raw == "good" {
					return nil
				}
				return service.ErrTokenIsExpiredOrInvalid
			},
		},
	})

	rr := postJSON(h, "/api/token/verify/", `{"token":"good"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())

	rr = postJSON(h, "/api/token/verify/", `{"token":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), codeTokenNotValid)

	rr = postJSON(h, "/api/token/verify/", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
