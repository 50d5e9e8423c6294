// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces identifiers for token "jti" claims and session
// keys.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// SessionKey returns the 32 hex characters of a random UUIDv4.
func (g *UUIDGenerator) SessionKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
