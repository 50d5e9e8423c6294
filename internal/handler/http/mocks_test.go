// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/models"
)

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return m.info
}

// ---- Mock: TokenService ----

type mockTokenService struct {
	issuePairFn         func(ctx context.Context, user models.User) (models.TokenPair, error)
	issueRefreshTokenFn func(ctx context.Context, userID int64) (models.Token, error)
	refreshFn           func(ctx context.Context, refreshToken string) (string, error)
	verifyFn            func(ctx context.Context, raw string) (models.Verification, error)
	validateFn          func(ctx context.Context, raw string) error
}

func (m *mockTokenService) IssuePair(ctx context.Context, user models.User) (models.TokenPair, error) {
	return m.issuePairFn(ctx, user)
}

func (m *mockTokenService) IssueRefreshToken(ctx context.Context, userID int64) (models.Token, error) {
	if m.issueRefreshTokenFn == nil {
		return models.Token{SignedString: "refresh-token"}, nil
	}
	return m.issueRefreshTokenFn(ctx, userID)
}

func (m *mockTokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockTokenService) Verify(ctx context.Context, raw string) (models.Verification, error) {
	return m.verifyFn(ctx, raw)
}

func (m *mockTokenService) Validate(ctx context.Context, raw string) error {
	return m.validateFn(ctx, raw)
}

// ---- Mock: AuthService ----

type mockAuthService struct {
	registerUserFn func(ctx context.Context, reg models.Registration) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	startSessionFn func(ctx context.Context, userID int64) (models.Session, error)
	sessionUserFn  func(ctx context.Context, sessionID string) (models.User, error)
	endSessionFn   func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, reg models.Registration) (models.User, error) {
	return m.registerUserFn(ctx, reg)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) StartSession(ctx context.Context, userID int64) (models.Session, error) {
	return m.startSessionFn(ctx, userID)
}

func (m *mockAuthService) SessionUser(ctx context.Context, sessionID string) (models.User, error) {
	if m.sessionUserFn == nil {
		return models.User{}, service.ErrSessionNotFound
	}
	return m.sessionUserFn(ctx, sessionID)
}

func (m *mockAuthService) EndSession(ctx context.Context, sessionID string) error {
	if m.endSessionFn == nil {
		return nil
	}
	return m.endSessionFn(ctx, sessionID)
}

func (m *mockAuthService) PurgeExpiredSessions(_ context.Context) (int64, error) {
	return 0, nil
}

// ---- Mock: UserService ----

type mockUserService struct {
	createUserFn  func(ctx context.Context, user models.User) (models.User, error)
	getUserFn     func(ctx context.Context, id int64) (models.User, error)
	listUsersFn   func(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	replaceUserFn func(ctx context.Context, update models.UserUpdate) (models.User, error)
	updateUserFn  func(ctx context.Context, update models.UserUpdate) (models.User, error)
	deleteUserFn  func(ctx context.Context, id int64) error
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	return m.listUsersFn(ctx, page)
}

func (m *mockUserService) ReplaceUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return m.replaceUserFn(ctx, update)
}

func (m *mockUserService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, update)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteUserFn(ctx, id)
}

// ---- Helpers ----

func newTestHandlerWithServices(services *service.Services) *Handler {
	return NewHandler(services, config.Server{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

// validFor42 verifies every token as the identity of user 42.
func validFor42(_ context.Context, _ string) (models.Verification, error) {
	return models.Verified(models.Identity{UserID: 42, Username: "alice"}), nil
}
