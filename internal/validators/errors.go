// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages reported to API clients and form users.
const (
	MsgRequired         = "This field is required."
	MsgBlank            = "This field may not be blank."
	MsgMaxLength150     = "Ensure this field has no more than 150 characters."
	MsgMaxLength254     = "Ensure this field has no more than 254 characters."
	MsgInvalidUsername  = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgInvalidEmail     = "Enter a valid email address."
	MsgPasswordMismatch = "The two password fields didn’t match."
	MsgUsernameTaken    = "A user with that username already exists."
	MsgPasswordTooLong  = "This password is too long. It must contain no more than 72 bytes."
)

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Err returns e as an error, or nil when it holds no messages.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error renders the messages in field order, e.g.
// "email: Enter a valid email address.; username: This field is required.".
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(e[field], " "))
	}
	return b.String()
}

// AsFieldErrors extracts FieldErrors from err's chain.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
