// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// application: typed context keys, JWT generation and validation, password
// hashing, HTTP response writing and HTTP client initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key under which the bearer-verified user ID is
	// stored. It is set together with IdentityCtxKey.
	UserIDCtxKey = contextKey("userID")

	// IdentityCtxKey is the key under which the bearer-verified
	// models.Identity is stored. Its absence means the request is anonymous.
	IdentityCtxKey = contextKey("identity")

	// SessionUserCtxKey is the key under which the form-session user is
	// stored. It is independent from the bearer identity.
	SessionUserCtxKey = contextKey("sessionUser")
)

// WithIdentity returns a copy of ctx carrying identity and its user ID.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	ctx = context.WithValue(ctx, IdentityCtxKey, identity)
	return context.WithValue(ctx, UserIDCtxKey, identity.UserID)
}

// IdentityFromContext returns the bearer identity bound to ctx.
// ok is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// GetUserIDFromContext retrieves the bearer-verified user identifier from
// the context. ok is false when the value is missing or has an unexpected
// type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithSessionUser returns a copy of ctx carrying the user logged in through
// the HTML form session.
func WithSessionUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, SessionUserCtxKey, user)
}

// SessionUserFromContext returns the form-session user bound to ctx.
func SessionUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(SessionUserCtxKey).(models.User)
	return user, ok
}
