// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-accounts/models"
)

// Field name constants used to specify which fields should be validated.
// They double as the keys of the FieldErrors map.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPassword  = "password"
	FieldPassword1 = "password1"
	FieldPassword2 = "password2"
)

const (
	maxNameLength  = 150
	maxEmailLength = 254

	// bcrypt input limit
	maxPasswordBytes = 72
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// UserValidator validates user-related models: models.User (create),
// models.UserUpdate (full and partial update), models.Registration and
// models.Credentials.
type UserValidator struct {
	passwordMinLength int
}

// NewUserValidator constructs a UserValidator enforcing passwordMinLength.
func NewUserValidator(passwordMinLength int) Validator {
	return &UserValidator{passwordMinLength: passwordMinLength}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. It returns FieldErrors when the input is invalid and
// ErrUnsupportedType for unknown types.
//
// For models.UserUpdate only the supplied (non-nil) fields are checked;
// fields names fields that must be present, e.g. FieldUsername for PUT.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)
	case models.Registration:
		return v.validateRegistration(value)
	case *models.Registration:
		return v.validateRegistration(*value)
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldFirstName, FieldLastName, FieldPassword}
	}

	errs := make(FieldErrors)
	for _, field := range fields {
		switch field {
		case FieldUsername:
			v.checkUsername(errs, user.Username, MsgRequired)
		case FieldEmail:
			v.checkEmail(errs, user.Email)
		case FieldFirstName:
			v.checkMaxLength(errs, FieldFirstName, user.FirstName)
		case FieldLastName:
			v.checkMaxLength(errs, FieldLastName, user.LastName)
		case FieldPassword:
			v.checkPassword(errs, FieldPassword, user.Password)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errs.Err()
}

func (v *UserValidator) validateUserUpdate(update models.UserUpdate, required ...string) error {
	errs := make(FieldErrors)

	for _, field := range required {
		var present bool
		switch field {
		case FieldUsername:
			present = update.Username != nil
		case FieldEmail:
			present = update.Email != nil
		case FieldFirstName:
			present = update.FirstName != nil
		case FieldLastName:
			present = update.LastName != nil
		case FieldPassword:
			present = update.Password != nil
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if !present {
			errs.Add(field, MsgRequired)
		}
	}

	if update.Username != nil {
		v.checkUsername(errs, *update.Username, MsgBlank)
	}
	if update.Email != nil {
		v.checkEmail(errs, *update.Email)
	}
	if update.FirstName != nil {
		v.checkMaxLength(errs, FieldFirstName, *update.FirstName)
	}
	if update.LastName != nil {
		v.checkMaxLength(errs, FieldLastName, *update.LastName)
	}
	if update.Password != nil {
		v.checkPassword(errs, FieldPassword, *update.Password)
	}

	return errs.Err()
}

func (v *UserValidator) validateRegistration(reg models.Registration) error {
	errs := make(FieldErrors)

	v.checkUsername(errs, reg.Username, MsgRequired)

	if reg.Password1 == "" {
		errs.Add(FieldPassword1, MsgRequired)
	}
	if reg.Password2 == "" {
		errs.Add(FieldPassword2, MsgRequired)
	}
	if reg.Password1 != "" && reg.Password2 != "" {
		if reg.Password1 != reg.Password2 {
			errs.Add(FieldPassword2, MsgPasswordMismatch)
		} else {
			v.checkPassword(errs, FieldPassword2, reg.Password2)
		}
	}

	return errs.Err()
}

func (v *UserValidator) validateCredentials(creds models.Credentials) error {
	errs := make(FieldErrors)
	if creds.Username == "" {
		errs.Add(FieldUsername, MsgRequired)
	}
	if creds.Password == "" {
		errs.Add(FieldPassword, MsgRequired)
	}
	return errs.Err()
}

func (v *UserValidator) checkUsername(errs FieldErrors, username, emptyMsg string) {
	switch {
	case username == "":
		errs.Add(FieldUsername, emptyMsg)
	case utf8.RuneCountInString(username) > maxNameLength:
		errs.Add(FieldUsername, MsgMaxLength150)
	case !usernamePattern.MatchString(username):
		errs.Add(FieldUsername, MsgInvalidUsername)
	}
}

// checkEmail accepts an empty address; a non-empty one must be a bare
// addr-spec without display name.
func (v *UserValidator) checkEmail(errs FieldErrors, email string) {
	if email == "" {
		return
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		errs.Add(FieldEmail, MsgMaxLength254)
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		errs.Add(FieldEmail, MsgInvalidEmail)
	}
}

func (v *UserValidator) checkMaxLength(errs FieldErrors, field, value string) {
	if utf8.RuneCountInString(value) > maxNameLength {
		errs.Add(field, MsgMaxLength150)
	}
}

func (v *UserValidator) checkPassword(errs FieldErrors, field, password string) {
	if password == "" {
		errs.Add(field, MsgRequired)
		return
	}
	if utf8.RuneCountInString(password) < v.passwordMinLength {
		errs.Add(field, fmt.Sprintf(
			"This password is too short. It must contain at least %d characters.", v.passwordMinLength))
	}
	if len(password) > maxPasswordBytes {
		errs.Add(field, MsgPasswordTooLong)
	}
}
