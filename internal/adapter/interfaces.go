// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to a
// go-accounts server.
//
// [ServerAdapter] hides the REST protocol from the command-line client.
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-accounts server.
type ServerAdapter interface {
	// SetToken stores the access token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored access token, or "" if none is set.
	Token() string

	// ObtainToken exchanges credentials for a token pair and stores the
	// access token via SetToken.
	ObtainToken(ctx context.Context, creds models.Credentials) (models.TokenPair, error)

	// RefreshToken returns a new access token for a refresh token.
	RefreshToken(ctx context.Context, refresh string) (string, error)

	// VerifyToken returns nil when the server accepts token.
	VerifyToken(ctx context.Context, token string) error

	// AppInfo returns the server version and token lifetimes.
	AppInfo(ctx context.Context) (models.AppInfo, error)

	// ListUsers fetches one page of users. Zero page or pageSize leaves the
	// choice to the server.
	ListUsers(ctx context.Context, page, pageSize int) (models.UserList, error)

	// GetUser fetches a single user by id.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser creates a user and returns the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes a user by id.
	DeleteUser(ctx context.Context, id int64) error
}
