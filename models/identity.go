// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Identity is the principal bound to a single request after its bearer token
// has been verified. It lives only as long as the request context.
type Identity struct {
	UserID   int64
	Username string
}

// Subject returns the identity in the form used by the "sub" token claim.
func (i Identity) Subject() string {
	return strconv.FormatInt(i.UserID, 10)
}

// VerificationKind enumerates the outcomes of bearer token verification.
type VerificationKind int

const (
	// Invalid means no identity could be established from the token.
	Invalid VerificationKind = iota
	// Valid means the token was verified and its subject resolved.
	Valid
)

// String implements fmt.Stringer.
func (k VerificationKind) String() string {
	switch k {
	case Valid:
		return "valid"
	default:
		return "invalid"
	}
}

// Verification is the outcome of verifying one bearer token.
// Identity is set only for Valid; Reason explains an Invalid outcome.
type Verification struct {
	Kind     VerificationKind
	Identity Identity
	Reason   error
}

// Verified builds a Valid outcome for identity.
func Verified(identity Identity) Verification {
	return Verification{Kind: Valid, Identity: identity}
}

// Rejected builds an Invalid outcome with the given reason.
func Rejected(reason error) Verification {
	return Verification{Kind: Invalid, Reason: reason}
}
