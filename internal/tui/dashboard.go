// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pay-trial/internal/service"
	"github.com/MKhiriev/go-pay-trial/models"
)

const statusClearDelay = 2 * time.Second

// DashboardModel shows the signed-in account, its trial state, the tool
// catalogue and the latest notifications.
type DashboardModel struct {
	ctx       context.Context
	session   service.ClientSessionService
	dashboard service.ClientDashboardService
	copy      func(string) error

	status        models.SessionStatus
	tools         []models.ToolAccess
	notifications []models.Notification
	idx           int

	loading bool
	spinner spinner.Model

	info   string
	errMsg string
}

func NewDashboardModel(ctx context.Context, session service.ClientSessionService, dashboard service.ClientDashboardService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:       ctx,
		session:   session,
		dashboard: dashboard,
		copy:      clipboard.WriteAll,
		spinner:   s,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionChanged:
		m.status = msg.Status
		m.info, m.errMsg = "", ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadTools())

	case toolsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.tools = msg.tools
		if m.idx >= len(m.tools) {
			m.idx = 0
		}
		return m, nil

	case toolLaunchedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.info = "Запуск " + msg.name + "..."
		return m, cmdClearStatus()

	case statusUpdateMsg:
		return m.applyStatusUpdate(service.StatusUpdate(msg))

	case logoutDoneMsg:
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: LogoutNotice{Err: msg.err}} }

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.info = "ID аккаунта скопирован"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.info = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.tools)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.tools) == 0 {
			return m, nil
		}
		return m, m.cmdLaunch(m.tools[m.idx].Name)
	case key.Matches(msg, keys.trial):
		return m, func() tea.Msg { return NavigateTo{Page: pageTrial} }
	case key.Matches(msg, keys.copy):
		if m.status.Account == nil {
			return m, nil
		}
		return m, m.cmdCopy(m.status.Account.ID)
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

// applyStatusUpdate folds a poll result into the view. The dashboard leaves
// when the server no longer has this account signed in.
func (m *DashboardModel) applyStatusUpdate(update service.StatusUpdate) (tea.Model, tea.Cmd) {
	if update.Err != nil {
		m.errMsg = humanizeServerUnavailableError(update.Err)
		return m, nil
	}

	if m.status.Account != nil && (update.Status.Account == nil || update.Status.Account.ID != m.status.Account.ID) {
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: LogoutNotice{Err: service.ErrSessionExpired}}
		}
	}

	trialChanged := update.Status.CanAccessPremium != m.status.CanAccessPremium
	m.status = update.Status
	if update.Notifications != nil {
		m.notifications = update.Notifications
	}

	if trialChanged {
		return m, m.cmdLoadTools()
	}
	return m, nil
}

func (m *DashboardModel) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) {
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: LogoutNotice{Err: err}} }
	}
	m.info = ""
	m.errMsg = humanizeServerUnavailableError(err)
	return m, nil
}

func (m *DashboardModel) reset() {
	m.status = models.SessionStatus{}
	m.tools = nil
	m.notifications = nil
	m.idx = 0
	m.loading = false
	m.info, m.errMsg = "", ""
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if account := m.status.Account; account != nil {
		b.WriteString(titleStyle.Render(account.Name))
		b.WriteString(" <" + account.Email + ">\n")
		b.WriteString(helpStyle.Render("ID: " + account.ID))
		b.WriteString("\n")
	}
	b.WriteString("Триал: ")
	b.WriteString(trialLine(m.status))
	b.WriteString("\n\n")

	header := "Инструменты"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n")

	for i, tool := range m.tools {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %-24s %s", cursor, fitText(tool.Name, 24), fitText(tool.Description, 40))
		switch {
		case tool.Locked:
			line = lockedStyle.Render(line + "  [premium]")
		case tool.Premium:
			line += "  [premium]"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.notifications) > 0 {
		b.WriteString("\nУведомления\n")
		for _, n := range m.notifications {
			b.WriteString(severityStyle(string(n.Severity)).Render(fmt.Sprintf("%s  %s: %s", n.At.Local().Format("15:04"), n.Title, n.Body)))
			b.WriteString("\n")
		}
	}

	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.info))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ПАНЕЛЬ", strings.TrimRight(b.String(), "\n"),
		"enter: запустить │ t: триал │ c: копировать ID │ r: обновить │ l: выйти")
}

func trialLine(status models.SessionStatus) string {
	switch {
	case status.CanAccessPremium:
		return trialBadgeStyle.Render(fmt.Sprintf("активен, осталось дней: %d", status.TrialDaysRemaining))
	case status.TrialActive:
		return "активен, осталось дней: 0"
	default:
		return "не активен (t: начать бесплатный триал)"
	}
}

func (m *DashboardModel) cmdLoadTools() tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard
	return func() tea.Msg {
		tools, err := dashboard.Tools(ctx)
		return toolsLoadedMsg{tools: tools, err: err}
	}
}

func (m *DashboardModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return tea.Sequence(
		func() tea.Msg {
			status, err := session.Status(ctx)
			if err != nil {
				return toolsLoadedMsg{err: err}
			}
			return statusUpdateMsg{Status: status}
		},
		m.cmdLoadTools(),
	)
}

func (m *DashboardModel) cmdLaunch(name string) tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard
	return func() tea.Msg {
		return toolLaunchedMsg{name: name, err: dashboard.LaunchTool(ctx, name)}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func (m *DashboardModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
