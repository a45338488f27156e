// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pay-trial/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) turns successful auth and trial results into a dashboard refresh
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m)
	case AuthResult:
		if m.Err == nil {
			r.forward(msg)
			return r.navigate(NavigateTo{Page: pageDashboard, Payload: SessionChanged{Status: m.Status}})
		}
	case TrialResult:
		if m.Err == nil {
			r.forward(msg)
			return r.navigate(NavigateTo{Page: pageDashboard, Payload: SessionChanged{Status: m.Status}})
		}
	case statusUpdateMsg:
		// polling results only matter while the dashboard is shown
		if r.current != pageDashboard {
			return r, nil
		}
	}

	return r, r.forward(msg)
}

// forward delivers msg to the active page.
func (r RootModel) forward(msg tea.Msg) tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
	}
	return r, next.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(overlayBoxStyle.Render(renderBuildInfoWindow(r.buildInfo)))
	}
	page := r.page()
	if page == nil {
		return renderPage("TUI", "", "")
	}
	return appStyle.Render(page.View())
}

// QuitByUser reports whether the program ended on Ctrl+C.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}
