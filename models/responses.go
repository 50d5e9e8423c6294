// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PayloadResponse is the envelope used by the users API for successful
// responses: {"status": 200, "payload": ..., "message": ...}.
type PayloadResponse struct {
	Status  int    `json:"status"`
	Payload any    `json:"payload,omitempty"`
	Message string `json:"message,omitempty"`

	// Token is only set on list responses and carries a refresh token issued
	// for the calling user.
	Token string `json:"token,omitempty"`
}

// ErrorsResponse is returned with 400 Bad Request when update validation
// fails: {"status": 400, "errors": {"field": ["message"]}}.
type ErrorsResponse struct {
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// PaginatedResponse wraps a page of results with navigation links.
type PaginatedResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// DetailResponse carries a single human-readable error message.
type DetailResponse struct {
	Detail string `json:"detail"`
}
