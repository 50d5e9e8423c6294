// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrWrongTokenType:          http.StatusUnauthorized,
	service.ErrUnknownSubject:          http.StatusUnauthorized,
	service.ErrInactiveUser:            http.StatusUnauthorized,
	service.ErrSessionNotFound:         http.StatusUnauthorized,
	service.ErrSessionExpired:          http.StatusUnauthorized,

	service.ErrUserNotFound:   http.StatusNotFound,
	service.ErrPageOutOfRange: http.StatusNotFound,

	service.ErrIdentityLookupFailed: http.StatusInternalServerError,
	service.ErrTokenCreationFailed:  http.StatusInternalServerError,
}

var errorDetailMap = map[error]string{
	service.ErrWrongCredentials:        MsgNoActiveAccount,
	service.ErrTokenIsExpired:          MsgTokenNotValid,
	service.ErrTokenIsExpiredOrInvalid: MsgTokenNotValid,
	service.ErrWrongTokenType:          MsgTokenNotValid,
	service.ErrUnknownSubject:          MsgTokenNotValid,
	service.ErrInactiveUser:            MsgTokenNotValid,
	service.ErrUserNotFound:            MsgNotFound,
	service.ErrPageOutOfRange:          MsgInvalidPage,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error, status int) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	if errors.Is(err, ErrInvalidJSON) {
		return err.Error()
	}
	return http.StatusText(status)
}

// writeError answers err as JSON. Validation errors become a field map with
// 400, everything else a {"detail": ...} body with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if fe, ok := validators.AsFieldErrors(err); ok {
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteJSON(w, fe, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.DetailResponse{Detail: detailFromError(err, status)}, status)
}
