// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// AuthService covers the form-based account flows: registration,
// password login and server-side sessions.
type AuthService interface {
	RegisterUser(ctx context.Context, reg models.Registration) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	StartSession(ctx context.Context, userID int64) (models.Session, error)
	SessionUser(ctx context.Context, sessionID string) (models.User, error)
	EndSession(ctx context.Context, sessionID string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	IssuePair(ctx context.Context, user models.User) (models.TokenPair, error)
	IssueRefreshToken(ctx context.Context, userID int64) (models.Token, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Verify resolves raw to an identity. Credential problems yield an
	// Invalid verification with a nil error; a non-nil error means the
	// identity could not be looked up at all.
	Verify(ctx context.Context, raw string) (models.Verification, error)

	// Validate checks signature and expiry of a token of any type.
	Validate(ctx context.Context, raw string) error
}

// UserService is the CRUD surface of the users API.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	// ReplaceUser is a full update: every mutable field is written.
	ReplaceUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	// UpdateUser is a partial update of the supplied fields.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// AppInfoService publishes static facts about the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
