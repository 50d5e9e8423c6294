// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

var joined = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// serveAuthenticated sends the request through the full router as user 42.
func serveAuthenticated(users service.UserService, method, target, body string) *httptest.ResponseRecorder {
	h := newTestHandlerWithServices(&service.Services{
		UserService:  users,
		TokenService: &mockTokenService{verifyFn: validFor42},
	})

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer token-42")

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// ---- list ----

func TestListUsers_FirstPage(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context, page models.PageRequest) (models.UserPage, error) {
			assert.Equal(t, models.PageRequest{Page: 1}, page)
			return models.UserPage{
				Users:    []models.User{{ID: 1, Username: "a", DateJoined: joined}, {ID: 2, Username: "b", DateJoined: joined}},
				Count:    5,
				Page:     1,
				PageSize: 2,
			}, nil
		},
	}

	rr := serveAuthenticated(users, http.MethodGet, "/users/", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  struct {
			Status  int           `json:"status"`
			Payload []models.User `json:"payload"`
			Token   string        `json:"token"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Equal(t, 5, body.Count)
	require.NotNil(t, body.Next)
	assert.Equal(t, "http://example.com/users/?page=2", *body.Next)
	assert.Nil(t, body.Previous)
	assert.Equal(t, 200, body.Results.Status)
	assert.Len(t, body.Results.Payload, 2)
	assert.Equal(t, "refresh-token", body.Results.Token)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestListUsers_MiddlePageLinks(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context, page models.PageRequest) (models.UserPage, error) {
			assert.Equal(t, models.PageRequest{Page: 2, PageSize: 1}, page)
			return models.UserPage{Users: []models.User{{ID: 2}}, Count: 3, Page: 2, PageSize: 1}, nil
		},
	}

	rr := serveAuthenticated(users, http.MethodGet, "/users/?page=2&page_size=1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"next":"http://example.com/users/?page=3&page_size=1"`)
	assert.Contains(t, rr.Body.String(), `"previous":"http://example.com/users/?page_size=1"`)
}

func TestListUsers_InvalidPage(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context, _ models.PageRequest) (models.UserPage, error) {
			return models.UserPage{}, service.ErrPageOutOfRange
		},
	}

	for _, target := range []string{"/users/?page=99", "/users/?page=abc", "/users/?page=0"} {
		rr := serveAuthenticated(users, http.MethodGet, target, "")

		assert.Equal(t, http.StatusNotFound, rr.Code, target)
		assert.JSONEq(t, `{"detail":"Invalid page."}`, rr.Body.String(), target)
	}
}

func TestListUsers_Anonymous(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{UserService: &mockUserService{}})

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, rr.Body.String())
}

// ---- create ----

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFn   func(ctx context.Context, user models.User) (models.User, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"username":"bob","password":"s3cret-pass","email":"bob@example.com"}`,
			createFn: func(_ context.Context, user models.User) (models.User, error) {
				user.ID = 7
				user.Password = ""
				user.DateJoined = joined
				return user, nil
			},
			wantStatus: http.StatusCreated,
			wantBody: `{"status":200,"message":"Your data","payload":{"id":7,"username":"bob",` +
				`"email":"bob@example.com","first_name":"","last_name":"","date_joined":"2026-01-02T03:04:05Z"}}`,
		},
		{
			name: "validation errors",
			body: `{"username":""}`,
			createFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, validators.FieldErrors{
					"username": {validators.MsgRequired},
					"password": {validators.MsgRequired},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"username":["This field is required."],"password":["This field is required."]}`,
		},
		{
			name:       "malformed JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"username":"bob","password":"s3cret-pass"}`,
			createFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, errors.New("db down")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveAuthenticated(&mockUserService{createUserFn: tt.createFn}, http.MethodPost, "/users/", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

// ---- retrieve / update / delete ----

func TestGetUser(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, id int64) (models.User, error) {
			if id == 3 {
				return models.User{ID: 3, Username: "carol", DateJoined: joined}, nil
			}
			return models.User{}, service.ErrUserNotFound
		},
	}

	rr := serveAuthenticated(users, http.MethodGet, "/users/3/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":200`)
	assert.Contains(t, rr.Body.String(), `"username":"carol"`)

	rr = serveAuthenticated(users, http.MethodGet, "/users/4/", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
}

func TestUpdateUser(t *testing.T) {
	existing := func(_ context.Context, id int64) (models.User, error) {
		if id == 3 {
			return models.User{ID: 3, Username: "carol"}, nil
		}
		return models.User{}, service.ErrUserNotFound
	}
	apply := func(_ context.Context, update models.UserUpdate) (models.User, error) {
		if update.Username != nil && *update.Username == "" {
			return models.User{}, validators.FieldErrors{"username": {validators.MsgBlank}}
		}
		user := models.User{ID: update.ID, Username: "carol"}
		if update.Username != nil {
			user.Username = *update.Username
		}
		return user, nil
	}
	users := &mockUserService{getUserFn: existing, replaceUserFn: apply, updateUserFn: apply}

	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		wantStatus  int
		wantContain string
	}{
		{
			name: "put", method: http.MethodPut, target: "/users/3/", body: `{"username":"caroline"}`,
			wantStatus: http.StatusOK, wantContain: `"message":"User updated successfully"`,
		},
		{
			name: "patch", method: http.MethodPatch, target: "/users/3/", body: `{"first_name":"Carol"}`,
			wantStatus: http.StatusOK, wantContain: `"message":"User partially updated successfully"`,
		},
		{
			name: "put with blank username", method: http.MethodPut, target: "/users/3/", body: `{"username":""}`,
			wantStatus: http.StatusBadRequest, wantContain: `{"status":400,"errors":{"username":["This field may not be blank."]}}`,
		},
		{
			name: "patch unknown user", method: http.MethodPatch, target: "/users/9/", body: `{}`,
			wantStatus: http.StatusNotFound, wantContain: `"detail":"Not found."`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveAuthenticated(users, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantContain)
		})
	}
}

func TestUpdateUser_PasswordHashNotAcceptedFromClient(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, id int64) (models.User, error) { return models.User{ID: id}, nil },
		updateUserFn: func(_ context.Context, update models.UserUpdate) (models.User, error) {
			assert.Nil(t, update.PasswordHash)
			require.NotNil(t, update.Password)
			assert.Equal(t, "new-password", *update.Password)
			return models.User{ID: update.ID}, nil
		},
	}

	rr := serveAuthenticated(users, http.MethodPatch, "/users/3/", `{"password":"new-password","PasswordHash":"x"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteUser(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, id int64) error {
			if id == 3 {
				return nil
			}
			return service.ErrUserNotFound
		},
	}

	rr := serveAuthenticated(users, http.MethodDelete, "/users/3/", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serveAuthenticated(users, http.MethodDelete, "/users/4/", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
