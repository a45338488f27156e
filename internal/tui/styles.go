// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lockedStyle     = lipgloss.NewStyle().Faint(true)
	trialBadgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("22"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// severityStyle picks the style of a notification line.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "error":
		return errorStyle
	case "success":
		return successStyle
	default:
		return helpStyle
	}
}
