// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.Compress(compressionLevel))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/session", h.getSession)
		r.Get("/api/notifications", h.getNotifications)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/trial", h.startTrial)
		r.Get("/api/dashboard/tools", h.listTools)
		r.Post("/api/dashboard/tools/{name}/launch", h.launchTool)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
