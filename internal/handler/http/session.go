// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pay-trial/internal/app"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/utils"
	"github.com/MKhiriev/go-pay-trial/models"
)

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.session.Status(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) startTrial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var details models.CardDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if !h.session.StartTrial(ctx, details) {
		utils.WriteError(w, app.MsgTrialActivationFailed, http.StatusPaymentRequired)
		return
	}

	if _, err := utils.WriteJSON(w, h.session.Status(), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// getNotifications lists recent notifications. The optional "limit" query
// parameter caps the count; zero or absent means all that are retained.
func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.WriteError(w, app.MsgInvalidLimit, http.StatusBadRequest)
			return
		}
		limit = n
	}

	notifications := h.feed.Recent(limit)
	if notifications == nil {
		notifications = []models.Notification{}
	}

	if _, err := utils.WriteJSON(w, notifications, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
