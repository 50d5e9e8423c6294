// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes short-lived access tokens from refresh tokens.
type TokenType string

const (
	// AccessToken authenticates API requests via the Authorization header.
	AccessToken TokenType = "access"
	// RefreshToken can only be exchanged for a new access token.
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the claim set carried by every issued JWT: the registered
// claims (iss, sub, exp, iat, jti) plus the token type.
type TokenClaims struct {
	jwt.RegisteredClaims

	// TokenType is serialised as the "token_type" claim.
	TokenType TokenType `json:"token_type"`
}

// Token is a signed JWT together with its decoded claims.
type Token struct {
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the result of a successful credential exchange.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the body of POST /api/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// VerifyRequest is the body of POST /api/token/verify/.
type VerifyRequest struct {
	Token string `json:"token"`
}

// AccessResponse is returned by the refresh endpoint.
type AccessResponse struct {
	Access string `json:"access"`
}
