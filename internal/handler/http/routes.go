// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodyBytes caps every request body. Reads past it fail, so JSON
// decoding and form parsing answer 400.
const maxRequestBodyBytes = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(middleware.RequestSize(maxRequestBodyBytes))
	router.Use(h.withIdentity)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home/", http.StatusFound)
	})

	// HTML pages with form sessions
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/register/", h.registerPage)
		r.Post("/register/", h.register)
		r.Get("/login/", h.loginPage)
		r.Post("/login/", h.login)
		r.Get("/logout/", h.logout)
		r.Post("/logout/", h.logout)

		r.With(h.requireSession).Get("/home/", h.home)
	})

	// token endpoints
	router.Group(func(r chi.Router) {
		r.Post("/api/token/", h.obtainToken)
		r.Post("/api/token/refresh/", h.refreshToken)
		r.Post("/api/token/verify/", h.verifyToken)
		r.Get("/api/version/", h.getAppInfo)
	})

	// users API, bearer identity required
	router.Group(func(r chi.Router) {
		r.Use(h.requireIdentity)

		r.Get("/users/", h.listUsers)
		r.Post("/users/", h.createUser)
		r.Get("/users/{id:[0-9]+}/", h.getUser)
		r.Put("/users/{id:[0-9]+}/", h.replaceUser)
		r.Patch("/users/{id:[0-9]+}/", h.updateUser)
		r.Delete("/users/{id:[0-9]+}/", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
