// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account record managed by the users API and used for
// form and token authentication.
//
// Password is write-only: it carries the plain-text password supplied by a
// client on create/update and is always cleared before a User leaves the
// service layer. The stored bcrypt digest lives in PasswordHash and is never
// serialised.
type User struct {
	// ID is the server-assigned primary key.
	ID int64 `json:"id"`

	// Username is the unique login name (at most 150 characters of letters,
	// digits and @/./+/-/_).
	Username string `json:"username"`

	// Email is an optional contact address.
	Email string `json:"email"`

	// FirstName and LastName are optional display fields.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Password is the plain-text password received from a client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest persisted in the users table.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account may authenticate. Inactive
	// accounts resolve to anonymous in the bearer verifier.
	IsActive bool `json:"-"`

	// DateJoined is the creation timestamp.
	DateJoined time.Time `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// UserUpdate describes a partial update of a single user.
// Only non-nil fields are written.
type UserUpdate struct {
	// ID is the identifier of the record to update. Required.
	ID int64 `json:"-"`

	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`

	// Password is the new plain-text password. The service replaces it with
	// PasswordHash before the update reaches storage.
	Password *string `json:"password,omitempty"`

	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no field changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil &&
		u.Email == nil &&
		u.FirstName == nil &&
		u.LastName == nil &&
		u.Password == nil &&
		u.PasswordHash == nil
}

// FullUpdate converts a complete user representation into an update that
// overwrites every mutable field. The password is only changed when one is
// supplied.
func FullUpdate(u User) UserUpdate {
	update := UserUpdate{
		ID:        u.ID,
		Username:  &u.Username,
		Email:     &u.Email,
		FirstName: &u.FirstName,
		LastName:  &u.LastName,
	}
	if u.Password != "" {
		update.Password = &u.Password
	}
	return update
}

// Registration is the payload of the HTML registration form.
type Registration struct {
	Username  string
	Password1 string
	Password2 string
}

// Credentials is a username/password pair submitted to the login form or the
// token endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
