// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("JSON parse error")

// Response messages of the users API and the token endpoints.
const (
	MsgNotAuthenticated   = "Authentication credentials were not provided."
	MsgNotFound           = "Not found."
	MsgInvalidPage        = "Invalid page."
	MsgNoActiveAccount    = "No active account found with the given credentials"
	MsgTokenNotValid      = "Token is invalid or expired"
	MsgUserCreated        = "Your data"
	MsgUserUpdated        = "User updated successfully"
	MsgUserPartialUpdated = "User partially updated successfully"

	codeTokenNotValid = "token_not_valid"
)

// Messages of the HTML pages.
const (
	MsgRegistrationSuccessful = "Registration successful!"
	MsgInvalidLogin           = "Invalid username or password."
)
