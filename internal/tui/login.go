// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the email and password sign-in page. A successful sign-in
// changes the session; [RootModel] then opens the session page.
type LoginModel struct {
	ctx        context.Context
	controller service.ClientSessionController

	form       form
	submitting bool
	errMsg     string

	// notice is the reason of the last forced logout.
	notice string
}

func NewLoginModel(ctx context.Context, controller service.ClientSessionController) *LoginModel {
	return &LoginModel{
		ctx:        ctx,
		controller: controller,
		form: newForm(
			field{label: "Email", placeholder: "email", limit: 254},
			field{label: "Пароль", placeholder: "password", limit: 72, secret: true},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles the form keys, the sign-in result and forced-logout
// notices. Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginNotice:
		m.notice = msg.text
		m.errMsg = ""
		m.submitting = false
		return m, textinput.Blink

	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		m.form.reset()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.LoginRequest{Email: m.form.value(0), Password: m.form.raw(1)}
			if req.Email == "" || req.Password == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(req)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(errorStyle.Render("Сессия завершена: " + m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.View())
	submitStatus(&b, "Войти", m.submitting, m.errMsg)

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return authDoneMsg{err: controller.Login(ctx, req)}
	}
}
