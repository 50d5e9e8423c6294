// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration and password login against the UserRepository and
// keeps login sessions in the SessionRepository.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	validator validators.Validator

	// sessionDuration controls how long a login session remains valid.
	sessionDuration time.Duration

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		validator:         validators.NewUserValidator(cfg.PasswordMinLength),
		sessionDuration:   cfg.SessionDuration,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// RegisterUser validates the registration form and creates an active user.
//
// Returns validators.FieldErrors for invalid input, including a taken
// username.
func (a *authService) RegisterUser(ctx context.Context, reg models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, reg); err != nil {
		log.Debug().Err(err).Str("username", reg.Username).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(reg.Password1)
	if err != nil {
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     reg.Username,
		PasswordHash: hash,
		IsActive:     true,
		DateJoined:   a.now().UTC(),
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, validators.FieldErrors{validators.FieldUsername: {validators.MsgUsernameTaken}}
	}
	if err != nil {
		log.Err(err).Str("username", reg.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates a user by username and password.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongCredentials for an unknown user, a wrong password or an
//     inactive account.
//   - A wrapped storage error if the lookup fails for another reason.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, creds.Password); err != nil {
		log.Debug().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}
	if !foundUser.IsActive {
		return models.User{}, ErrWrongCredentials
	}

	return foundUser.Public(), nil
}

// StartSession creates a login session for userID.
func (a *authService) StartSession(ctx context.Context, userID int64) (models.Session, error) {
	now := a.now().UTC()
	session := models.Session{
		ID:        a.ids.SessionKey(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	return session, nil
}

// SessionUser resolves a session key to its active user. Expired sessions
// are deleted on access.
func (a *authService) SessionUser(ctx context.Context, sessionID string) (models.User, error) {
	if sessionID == "" {
		return models.User{}, ErrSessionNotFound
	}

	session, err := a.sessionRepository.FindSession(ctx, sessionID)
	if errors.Is(err, store.ErrNoSessionWasFound) {
		return models.User{}, ErrSessionNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error finding session: %w", err)
	}

	if session.Expired(a.now()) {
		if err = a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
			logger.FromContext(ctx).Err(err).Msg("error deleting expired session")
		}
		return models.User{}, ErrSessionExpired
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrSessionNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error finding session user: %w", err)
	}
	if !user.IsActive {
		return models.User{}, ErrSessionNotFound
	}

	return user.Public(), nil
}

// EndSession deletes the session. An unknown key is not an error.
func (a *authService) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return a.sessionRepository.DeleteSession(ctx, sessionID)
}

// PurgeExpiredSessions deletes every expired session.
func (a *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return a.sessionRepository.DeleteExpiredSessions(ctx, a.now())
}
