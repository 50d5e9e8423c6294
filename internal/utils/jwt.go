// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-accounts/models"
	"github.com/golang-jwt/jwt/v5"
)

// BearerPrefix is the literal prefix of an Authorization header carrying a
// bearer token. The match is case-sensitive.
const BearerPrefix = "Bearer "

// ErrInvalidJWTParams is returned by GenerateJWTToken for incomplete params.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// JWTParams describes a token to be issued.
type JWTParams struct {
	Issuer   string
	UserID   int64
	Type     models.TokenType
	Duration time.Duration
	SignKey  string
	// ID becomes the "jti" claim.
	ID string
	// IssuedAt defaults to time.Now when zero.
	IssuedAt time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token carries the registered claims iss, sub (the user ID as a
// decimal string), iat, exp and jti plus the token_type claim.
func GenerateJWTToken(p JWTParams) (models.Token, error) {
	if p.Issuer == "" || p.Duration == 0 || p.SignKey == "" || p.Type == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	issuedAt := p.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(p.Duration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ID:        p.ID,
		},
		TokenType: p.Type,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{TokenClaims: claims, SignedString: signed, UserID: p.UserID}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation covers the HS256 signature, the issuer, the presence and value
// of exp (evaluated against now) and a numeric subject. Errors wrap the
// jwt/v5 sentinels, so callers can test for jwt.ErrTokenExpired.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)

	var claims models.TokenClaims
	if _, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}); err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	token := models.Token{TokenClaims: claims, SignedString: tokenString}
	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	token.UserID = userID

	return token, nil
}

// ParseBearerToken extracts the raw token from an Authorization header
// value. ok is false when the header does not start with BearerPrefix.
func ParseBearerToken(authorizationHeader string) (token string, ok bool) {
	return strings.CutPrefix(authorizationHeader, BearerPrefix)
}
