// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// listUsers answers one page of users ordered by id. The results envelope
// carries a fresh refresh token of the caller.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pageRequest, err := parsePageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.ListUsers(ctx, pageRequest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	identity, _ := utils.IdentityFromContext(ctx)
	refresh, err := h.services.TokenService.IssueRefreshToken(ctx, identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users := page.Users
	if users == nil {
		users = []models.User{}
	}

	next, previous := pageLinks(r, page)
	utils.WriteJSON(w, models.PaginatedResponse{
		Count:    page.Count,
		Next:     next,
		Previous: previous,
		Results: models.PayloadResponse{
			Status:  http.StatusOK,
			Payload: users,
			Token:   refresh.String(),
		},
	}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}
	user.ID = 0

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", created.ID).Msg("user created")
	utils.WriteJSON(w, models.PayloadResponse{
		Status:  http.StatusOK,
		Payload: created,
		Message: MsgUserCreated,
	}, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PayloadResponse{Status: http.StatusOK, Payload: user}, http.StatusOK)
}

func (h *Handler) replaceUser(w http.ResponseWriter, r *http.Request) {
	h.writeUpdate(w, r, h.services.UserService.ReplaceUser, MsgUserUpdated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	h.writeUpdate(w, r, h.services.UserService.UpdateUser, MsgUserPartialUpdated)
}

// writeUpdate runs a full or partial update. A missing user is reported
// before validation errors, which use the {"status":400,"errors":...}
// envelope.
func (h *Handler) writeUpdate(w http.ResponseWriter, r *http.Request, apply func(context.Context, models.UserUpdate) (models.User, error), message string) {
	ctx := r.Context()

	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.services.UserService.GetUser(ctx, id); err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.ID = id
	update.PasswordHash = nil

	user, err := apply(ctx, update)
	if fe, isFieldErr := validators.AsFieldErrors(err); isFieldErr {
		utils.WriteJSON(w, models.ErrorsResponse{Status: http.StatusBadRequest, Errors: fe}, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.ID).Msg("user updated")
	utils.WriteJSON(w, models.PayloadResponse{
		Status:  http.StatusOK,
		Payload: user,
		Message: message,
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", id).Msg("user deleted")
	utils.WriteJSON(w, nil, http.StatusNoContent)
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, r, service.ErrUserNotFound)
		return 0, false
	}
	return id, true
}
