// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

func postForm(h *Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func getPage(h *Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ---- register ----

func TestRegister_Success_RedirectsWithFlash(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, reg models.Registration) (models.User, error) {
			assert.Equal(t, "bob", reg.Username)
			assert.Equal(t, "long-password", reg.Password1)
			return models.User{ID: 1, Username: reg.Username}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := postForm(h, "/register/", url.Values{
		"username": {"bob"}, "password1": {"long-password"}, "password2": {"long-password"},
	})

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login/", rr.Header().Get("Location"))

	flash := responseCookie(rr, flashCookieName)
	require.NotNil(t, flash)

	// the login page shows and consumes the message
	page := getPage(h, "/login/", flash)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), MsgRegistrationSuccessful)
	cleared := responseCookie(page, flashCookieName)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestRegister_InvalidForm_Rerenders(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Registration) (models.User, error) {
			return models.User{}, validators.FieldErrors{"password2": {validators.MsgPasswordMismatch}}
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := postForm(h, "/register/", url.Values{"username": {"bob"}, "password1": {"a"}, "password2": {"b"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), validators.MsgPasswordMismatch)
	assert.Contains(t, rr.Body.String(), `value="bob"`)
}

func TestRegister_StorageFailure(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Registration) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := postForm(h, "/register/", url.Values{"username": {"bob"}})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRegister_OversizedForm(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Registration) (models.User, error) {
			t.Error("registration must not run for an oversized form")
			return models.User{}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := postForm(h, "/register/", url.Values{"username": {strings.Repeat("a", maxRequestBodyBytes)}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- login / logout ----

func newLoginAuth(t *testing.T) *mockAuthService {
	t.Helper()
	return &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			if creds.Username == "alice" && creds.Password == "right" {
				return models.User{ID: 42, Username: "alice"}, nil
			}
			return models.User{}, service.ErrWrongCredentials
		},
		startSessionFn: func(_ context.Context, userID int64) (models.Session, error) {
			assert.Equal(t, int64(42), userID)
			return models.Session{ID: "session-key", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
}

func TestLogin_Success_SetsSessionCookie(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{AuthService: newLoginAuth(t)})

	rr := postForm(h, "/login/", url.Values{"username": {"alice"}, "password": {"right"}})

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/home/", rr.Header().Get("Location"))

	cookie := responseCookie(rr, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "session-key", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestLogin_FollowsLocalNextOnly(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{AuthService: newLoginAuth(t)})

	rr := postForm(h, "/login/", url.Values{"username": {"alice"}, "password": {"right"}, "next": {"/users/"}})
	assert.Equal(t, "/users/", rr.Header().Get("Location"))

	rr = postForm(h, "/login/", url.Values{"username": {"alice"}, "password": {"right"}, "next": {"//evil.example"}})
	assert.Equal(t, "/home/", rr.Header().Get("Location"))
}

func TestLogin_WrongCredentials_Rerenders(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{AuthService: newLoginAuth(t)})

	rr := postForm(h, "/login/", url.Values{"username": {"alice"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), MsgInvalidLogin)
	assert.Nil(t, responseCookie(rr, sessionCookieName))
}

func TestLogin_OversizedForm(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			t.Error("login must not run for an oversized form")
			return models.User{}, nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := postForm(h, "/login/", url.Values{"username": {"alice"}, "password": {strings.Repeat("a", maxRequestBodyBytes)}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogout_EndsSession(t *testing.T) {
	ended := ""
	auth := &mockAuthService{
		endSessionFn: func(_ context.Context, id string) error {
			ended = id
			return nil
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := postForm(h, "/logout/", url.Values{}, &http.Cookie{Name: sessionCookieName, Value: "session-key"})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login/", rr.Header().Get("Location"))
	assert.Equal(t, "session-key", ended)
	cookie := responseCookie(rr, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

// ---- home ----

func TestHome_RequiresSession(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{AuthService: &mockAuthService{}})

	rr := getPage(h, "/home/")

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login/?next=%2Fhome%2F", rr.Header().Get("Location"))
}

func TestHome_WithSession(t *testing.T) {
	auth := &mockAuthService{
		sessionUserFn: func(_ context.Context, id string) (models.User, error) {
			if id == "session-key" {
				return models.User{ID: 42, Username: "alice"}, nil
			}
			return models.User{}, service.ErrSessionNotFound
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := getPage(h, "/home/", &http.Cookie{Name: sessionCookieName, Value: "session-key"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Welcome, alice!")

	rr = getPage(h, "/home/", &http.Cookie{Name: sessionCookieName, Value: "stale"})
	assert.Equal(t, http.StatusFound, rr.Code)
	cleared := responseCookie(rr, sessionCookieName)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestHome_SessionLookupFailure(t *testing.T) {
	auth := &mockAuthService{
		sessionUserFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	h := newTestHandlerWithServices(&service.Services{AuthService: auth})

	rr := getPage(h, "/home/", &http.Cookie{Name: sessionCookieName, Value: "session-key"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSafeRedirect(t *testing.T) {
	tests := map[string]string{
		"/home/":                "/home/",
		"/users/?page=2":        "/users/?page=2",
		"":                      "",
		"https://evil.example/": "",
		"//evil.example":        "",
		`/\evil.example`:        "",
	}

	for in, want := range tests {
		assert.Equal(t, want, safeRedirect(in), in)
	}
}
