// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/internal/views"
	"github.com/MKhiriev/go-accounts/models"
)

func renderPage(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, views.Register(views.RegisterForm{}, h.popFlash(w, r)))
}

// register creates an account from the registration form. Success redirects
// to the login page with a flash message; invalid input re-renders the form.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	reg := models.Registration{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Password1: r.PostFormValue("password1"),
		Password2: r.PostFormValue("password2"),
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), reg)
	if fe, ok := validators.AsFieldErrors(err); ok {
		form := views.RegisterForm{Username: reg.Username, Errors: fe}
		renderPage(w, r, http.StatusOK, views.Register(form, nil))
		return
	}
	if err != nil {
		log.Err(err).Msg("registration failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user registered")

	h.addFlash(w, r, MsgRegistrationSuccessful)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	form := views.LoginForm{Next: safeRedirect(r.URL.Query().Get("next"))}
	renderPage(w, r, http.StatusOK, views.Login(form, h.popFlash(w, r)))
}

// login authenticates the form credentials and starts a session.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	next := safeRedirect(r.PostFormValue("next"))

	user, err := h.services.AuthService.Login(ctx, creds)
	if errors.Is(err, service.ErrWrongCredentials) || errors.Is(err, service.ErrInvalidDataProvided) {
		form := views.LoginForm{Username: creds.Username, Next: next, Error: MsgInvalidLogin}
		renderPage(w, r, http.StatusOK, views.Login(form, nil))
		return
	}
	if err != nil {
		log.Err(err).Msg("login failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// a fresh key on every login
	if cookie, cookieErr := r.Cookie(sessionCookieName); cookieErr == nil {
		if err = h.services.AuthService.EndSession(ctx, cookie.Value); err != nil {
			log.Err(err).Msg("error ending previous session")
		}
	}

	session, err := h.services.AuthService.StartSession(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("error starting session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user logged in")

	h.setSessionCookie(w, session)
	if next == "" {
		next = homePath
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err = h.services.AuthService.EndSession(r.Context(), cookie.Value); err != nil {
			logger.FromRequest(r).Err(err).Msg("error ending session")
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.SessionUserFromContext(r.Context())
	renderPage(w, r, http.StatusOK, views.Home(user.Username, h.popFlash(w, r)))
}

// safeRedirect keeps only local absolute paths.
func safeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return ""
	}
	return next
}
