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

// userService implements UserService over the UserRepository. Input is
// expected to be validated already (see userValidationService). Every user
// it returns has passed through models.User.Public.
type userService struct {
	userRepository store.UserRepository

	pageSize    int
	maxPageSize int

	now func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.Pagination, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		pageSize:       cfg.PageSize,
		maxPageSize:    cfg.MaxPageSize,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	user.PasswordHash = hash
	user.IsActive = true
	user.DateJoined = s.now().UTC()

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, s.mapError(ctx, err)
	}

	return created.Public(), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, s.mapError(ctx, err)
	}

	return user.Public(), nil
}

// ListUsers returns the requested page. The page size falls back to the
// configured default and is capped at the configured maximum. Page numbers
// outside [1, NumPages] yield ErrPageOutOfRange; an empty listing still has
// page 1. models.LastPage resolves to the final page.
func (s *userService) ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	if page.PageSize <= 0 {
		page.PageSize = s.pageSize
	}
	if page.PageSize > s.maxPageSize {
		page.PageSize = s.maxPageSize
	}

	count, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return models.UserPage{}, s.mapError(ctx, err)
	}

	result := models.UserPage{Count: count, Page: page.Page, PageSize: page.PageSize}
	if page.Page == models.LastPage {
		page.Page = result.NumPages()
		result.Page = page.Page
	}
	if page.Page < 1 || page.Page > result.NumPages() {
		return models.UserPage{}, ErrPageOutOfRange
	}

	users, err := s.userRepository.ListUsers(ctx, page.Offset(), page.PageSize)
	if err != nil {
		return models.UserPage{}, s.mapError(ctx, err)
	}

	for i := range users {
		users[i] = users[i].Public()
	}
	result.Users = users

	return result, nil
}

func (s *userService) ReplaceUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return s.UpdateUser(ctx, update)
}

// UpdateUser writes the supplied fields. A new password is hashed before it
// reaches storage.
func (s *userService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password)
		if err != nil {
			return models.User{}, err
		}
		update.PasswordHash = &hash
		update.Password = nil
	}

	user, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, s.mapError(ctx, err)
	}

	return user.Public(), nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return s.mapError(ctx, err)
	}
	return nil
}

func (s *userService) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return validators.FieldErrors{validators.FieldUsername: {validators.MsgUsernameTaken}}
	default:
		logger.FromContext(ctx).Err(err).Msg("user storage error")
		return fmt.Errorf("user storage error: %w", err)
	}
}
