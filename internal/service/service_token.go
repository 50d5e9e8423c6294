// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

// tokenService is the concrete implementation of TokenService. Tokens are
// HS256 JWTs signed with the configured key; access and refresh tokens are
// told apart by their token_type claim.
type tokenService struct {
	userRepository store.UserRepository

	tokenSignKey string
	tokenIssuer  string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService resolving token subjects through
// userRepository.
func NewTokenService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		userRepository:       userRepository,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		ids:                  utils.NewUUIDGenerator(),
		now:                  time.Now,
		logger:               logger,
	}
}

// IssuePair issues an access and a refresh token for an authenticated user.
func (s *tokenService) IssuePair(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := s.issue(user.ID, models.AccessToken, s.accessTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh, err := s.issue(user.ID, models.RefreshToken, s.refreshTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{Access: access.String(), Refresh: refresh.String()}, nil
}

// IssueRefreshToken issues a refresh token for userID.
func (s *tokenService) IssueRefreshToken(ctx context.Context, userID int64) (models.Token, error) {
	return s.issue(userID, models.RefreshToken, s.refreshTokenDuration)
}

// Refresh exchanges a valid refresh token for a new access token. The
// subject must still be an active user.
func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := logger.FromContext(ctx)

	token, err := s.parse(refreshToken)
	if err != nil {
		return "", err
	}
	if token.TokenType != models.RefreshToken {
		return "", ErrWrongTokenType
	}

	user, err := s.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return "", ErrUnknownSubject
	}
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("refresh: user lookup failed")
		return "", fmt.Errorf("%w: %w", ErrIdentityLookupFailed, err)
	}
	if !user.IsActive {
		return "", ErrInactiveUser
	}

	access, err := s.issue(user.ID, models.AccessToken, s.accessTokenDuration)
	if err != nil {
		return "", err
	}

	return access.String(), nil
}

// Verify implements the bearer check performed on every request.
//
// Outcomes:
//   - bad signature, malformed, wrong issuer, expired → Invalid
//   - refresh token presented as bearer → Invalid
//   - subject unknown or inactive → Invalid
//   - any other lookup failure → error wrapping ErrIdentityLookupFailed
//   - otherwise → Valid with the subject's identity
func (s *tokenService) Verify(ctx context.Context, raw string) (models.Verification, error) {
	log := logger.FromContext(ctx)

	if raw == "" {
		return models.Rejected(ErrTokenIsExpiredOrInvalid), nil
	}

	token, err := s.parse(raw)
	if err != nil {
		log.Debug().Err(err).Msg("bearer token rejected")
		return models.Rejected(err), nil
	}
	if token.TokenType != models.AccessToken {
		return models.Rejected(ErrWrongTokenType), nil
	}

	user, err := s.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Int64("user_id", token.UserID).Msg("bearer token subject does not exist")
		return models.Rejected(ErrUnknownSubject), nil
	}
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("bearer identity lookup failed")
		return models.Verification{}, fmt.Errorf("%w: %w", ErrIdentityLookupFailed, err)
	}
	if !user.IsActive {
		return models.Rejected(ErrInactiveUser), nil
	}

	return models.Verified(models.Identity{UserID: user.ID, Username: user.Username}), nil
}

// Validate checks signature, issuer and expiry of raw regardless of its
// token type.
func (s *tokenService) Validate(ctx context.Context, raw string) error {
	_, err := s.parse(raw)
	return err
}

func (s *tokenService) issue(userID int64, tokenType models.TokenType, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   s.tokenIssuer,
		UserID:   userID,
		Type:     tokenType,
		Duration: duration,
		SignKey:  s.tokenSignKey,
		ID:       s.ids.Generate(),
		IssuedAt: s.now(),
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// parse normalises every validation failure to ErrTokenIsExpired or
// ErrTokenIsExpiredOrInvalid.
func (s *tokenService) parse(raw string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(raw, s.tokenSignKey, s.tokenIssuer, s.now)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
