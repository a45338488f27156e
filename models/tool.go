// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tool is an entry of the dashboard tool catalogue.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Premium     bool   `json:"premium"`
}

// ToolAccess is a [Tool] as seen by the current session.
type ToolAccess struct {
	Tool
	// Locked is true for premium tools while no trial is active.
	Locked bool `json:"locked"`
}
