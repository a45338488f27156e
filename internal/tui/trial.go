// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pay-trial/internal/service"
	"github.com/MKhiriev/go-pay-trial/models"
)

// TrialModel is the card form that activates the free trial. The CVV is
// echoed masked and the form is cleared after every attempt, so the card
// does not outlive the request.
type TrialModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       inputForm
	submitting bool
	errMsg     string
}

func NewTrialModel(ctx context.Context, session service.ClientSessionService) *TrialModel {
	return &TrialModel{
		ctx:     ctx,
		session: session,
		form: newInputForm(
			inputSpec{placeholder: "card number", charLimit: 23},
			inputSpec{placeholder: "name on card", charLimit: 100},
			inputSpec{placeholder: "MM/YY", charLimit: 5},
			inputSpec{placeholder: "CVV", charLimit: 4, masked: true},
		),
	}
}

func (m *TrialModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TrialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(TrialResult); ok {
		m.submitting = false
		m.form.reset()
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case "tab":
			m.form.focusNext()
			return m, nil
		case "shift+tab":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			card := models.CardDetails{
				CardNumber: strings.TrimSpace(m.form.value(0)),
				NameOnCard: strings.TrimSpace(m.form.value(1)),
				ExpiryDate: strings.TrimSpace(m.form.value(2)),
				CVV:        strings.TrimSpace(m.form.value(3)),
			}
			if card.CardNumber == "" || card.NameOnCard == "" || card.ExpiryDate == "" || card.CVV == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdStartTrial(card)
		}
	}

	return m, m.form.update(msg)
}

func (m *TrialModel) View() string {
	var b strings.Builder
	b.WriteString("30 дней доступа ко всем премиум-инструментам. Списаний не будет.\n\n")
	b.WriteString("Поле            │ Значение\n")
	b.WriteString("────────────────┼────────────────────────────────────\n")
	b.WriteString("Номер карты     │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Имя на карте    │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Срок действия   │ [")
	b.WriteString(m.form.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("CVV             │ [")
	b.WriteString(m.form.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Начать триал...]\n")
	} else {
		b.WriteString("\n[Начать триал]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("БЕСПЛАТНЫЙ ТРИАЛ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *TrialModel) cmdStartTrial(card models.CardDetails) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		status, err := session.StartTrial(ctx, card)
		return TrialResult{Status: status, Err: err}
	}
}
