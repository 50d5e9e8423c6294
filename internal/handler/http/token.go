// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

type tokenErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// decodeJSON decodes the request body into dst. Errors wrap ErrInvalidJSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w - %s", ErrInvalidJSON, err.Error())
	}
	return nil
}

// obtainToken exchanges username and password for an access/refresh pair.
func (h *Handler) obtainToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if errors.Is(err, service.ErrInvalidDataProvided) {
		fe, _ := validators.AsFieldErrors(err)
		utils.WriteJSON(w, fe, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.services.TokenService.IssuePair(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Msg("token pair issued")
	utils.WriteJSON(w, pair, http.StatusOK)
}

// refreshToken exchanges a refresh token for a new access token.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Refresh == "" {
		utils.WriteJSON(w, validators.FieldErrors{"refresh": {validators.MsgRequired}}, http.StatusBadRequest)
		return
	}

	access, err := h.services.TokenService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		h.writeTokenError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AccessResponse{Access: access}, http.StatusOK)
}

// verifyToken answers 200 with an empty object for a valid token of any
// type and 401 otherwise.
func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Token == "" {
		utils.WriteJSON(w, validators.FieldErrors{"token": {validators.MsgRequired}}, http.StatusBadRequest)
		return
	}

	if err := h.services.TokenService.Validate(r.Context(), req.Token); err != nil {
		h.writeTokenError(w, r, err)
		return
	}

	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) writeTokenError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status != http.StatusUnauthorized {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Msg("token rejected")
	utils.WriteJSON(w, tokenErrorResponse{Detail: MsgTokenNotValid, Code: codeTokenNotValid}, status)
}
