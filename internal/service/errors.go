// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrWrongTokenType          = errors.New("wrong token type")
	ErrUnknownSubject          = errors.New("token subject does not exist")
	ErrInactiveUser            = errors.New("user is inactive")
	ErrIdentityLookupFailed    = errors.New("identity lookup failed")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	ErrUserNotFound   = errors.New("user not found")
	ErrPageOutOfRange = errors.New("page out of range")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
