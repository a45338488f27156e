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

// SignupModel is the Bubble Tea model for the signup screen. It renders four
// text inputs (name, email, password and its confirmation). A successful
// signup signs the new account in, so the result is an [AuthResult] just like
// a login.
type SignupModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       inputForm
	submitting bool
	errMsg     string
}

// NewSignupModel creates a [SignupModel]; the password fields use masked echo.
func NewSignupModel(ctx context.Context, session service.ClientSessionService) *SignupModel {
	return &SignupModel{
		ctx:     ctx,
		session: session,
		form: newInputForm(
			inputSpec{placeholder: "name", charLimit: 100},
			inputSpec{placeholder: "email", charLimit: 254},
			inputSpec{placeholder: "password", charLimit: 256, masked: true},
			inputSpec{placeholder: "repeat password", charLimit: 256, masked: true},
		),
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
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

			name := strings.TrimSpace(m.form.value(0))
			email := strings.TrimSpace(m.form.value(1))
			pass := m.form.value(2)
			repeat := m.form.value(3)

			if name == "" || email == "" || pass == "" || repeat == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(name, email, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	b.WriteString("Имя            │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email          │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Пароль         │ [")
	b.WriteString(m.form.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Повтор пароля  │ [")
	b.WriteString(m.form.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *SignupModel) cmdSignup(name, email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		status, err := session.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: pass})
		return AuthResult{Status: status, Err: err, Email: email}
	}
}
