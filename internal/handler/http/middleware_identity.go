// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

// withIdentity binds the bearer identity of a request to its context.
//
// The "Authorization" header must start with the literal "Bearer " prefix;
// anything else leaves the request anonymous. The raw token is handed to
// [service.TokenService.Verify]:
//   - Valid: the identity is stored via [utils.WithIdentity].
//   - Invalid (bad signature, malformed, expired, wrong type, unknown or
//     inactive subject): the request continues anonymously.
//
// The next handler is always called, except when Verify reports an
// infrastructure error: then the middleware answers 500 itself. Rejecting
// anonymous requests is left to requireIdentity.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		verification, err := h.services.TokenService.Verify(r.Context(), raw)
		if err != nil {
			log.Err(err).Msg("bearer identity could not be resolved")
			utils.WriteJSON(w, models.DetailResponse{
				Detail: http.StatusText(http.StatusInternalServerError),
			}, http.StatusInternalServerError)
			return
		}

		switch verification.Kind {
		case models.Valid:
			log.Debug().Int64("user_id", verification.Identity.UserID).Msg("bearer identity bound")
			r = r.WithContext(utils.WithIdentity(r.Context(), verification.Identity))
		default:
			log.Debug().Err(verification.Reason).Msg("bearer token ignored, request stays anonymous")
		}

		next.ServeHTTP(w, r)
	})
}

// requireIdentity answers 401 for requests without a bearer identity.
func (h *Handler) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.IdentityFromContext(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
			utils.WriteJSON(w, models.DetailResponse{Detail: MsgNotAuthenticated}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
