// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// userValidationService decorates a UserService with input validation.
// Validation failures are returned as validators.FieldErrors without
// reaching the inner service.
type userValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(passwordMinLength int) UserServiceWrapper {
	return &userValidationService{
		validator: validators.NewUserValidator(passwordMinLength),
	}
}

func (v *userValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *userValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}
	return v.inner.CreateUser(ctx, user)
}

func (v *userValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *userValidationService) ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	return v.inner.ListUsers(ctx, page)
}

// ReplaceUser requires the username; the password stays optional so that a
// full update can keep the current one.
func (v *userValidationService) ReplaceUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update, validators.FieldUsername); err != nil {
		return models.User{}, err
	}
	return v.inner.ReplaceUser(ctx, update)
}

func (v *userValidationService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateUser(ctx, update)
}

func (v *userValidationService) DeleteUser(ctx context.Context, id int64) error {
	return v.inner.DeleteUser(ctx, id)
}
