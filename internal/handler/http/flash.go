// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "messages"

// addFlash queues msg for the next rendered page.
func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, msg string) {
	messages := readFlash(r)
	messages = append(messages, msg)

	raw, err := json.Marshal(messages)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the queued messages and clears them.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) []string {
	messages := readFlash(r)
	if len(messages) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return messages
}

func readFlash(r *http.Request) []string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var messages []string
	if err = json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}
