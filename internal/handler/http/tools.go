// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/utils"
)

func (h *Handler) listTools(w http.ResponseWriter, r *http.Request) {
	tools := h.services.ToolService.ListTools(r.Context())

	if _, err := utils.WriteJSON(w, tools, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) launchTool(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	accountID, _ := utils.GetAccountIDFromContext(r.Context())

	if err := h.services.ToolService.LaunchTool(r.Context(), name); err != nil {
		status := statusFromError(err)
		log.Info().Err(err).Str("account_id", accountID).Str("tool", name).Int("status", status).Msg("tool launch rejected")
		utils.WriteError(w, err.Error(), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
