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

// GoogleModel signs in with a Google access token pasted by the user. With
// the candidate toggle on, an unknown Google account is registered as a
// candidate.
type GoogleModel struct {
	ctx        context.Context
	controller service.ClientSessionController

	form       form
	candidate  bool
	submitting bool
	errMsg     string
}

func NewGoogleModel(ctx context.Context, controller service.ClientSessionController) *GoogleModel {
	return &GoogleModel{
		ctx:        ctx,
		controller: controller,
		form: newForm(
			field{label: "Google токен", placeholder: "access token", limit: 4096},
		),
	}
}

func (m *GoogleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *GoogleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.toggle):
			m.candidate = !m.candidate
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.GoogleSignInRequest{GoogleAccessToken: m.form.value(0)}
			if req.GoogleAccessToken == "" {
				m.errMsg = "Токен обязателен"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(req, m.candidate)
		}
	}

	return m, m.form.update(msg)
}

func (m *GoogleModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	b.WriteString("\nРегистрация соискателя: ")
	if m.candidate {
		b.WriteString("да\n")
	} else {
		b.WriteString("нет\n")
	}
	submitStatus(&b, "Войти через Google", m.submitting, m.errMsg)

	return renderPage("ВХОД ЧЕРЕЗ GOOGLE", strings.TrimRight(b.String(), "\n"), "esc: назад │ ctrl+n: соискатель │ enter: подтвердить")
}

func (m *GoogleModel) cmdSignIn(req models.GoogleSignInRequest, candidate bool) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		if candidate {
			return authDoneMsg{err: controller.GoogleSignInCandidate(ctx, req)}
		}
		return authDoneMsg{err: controller.GoogleSignIn(ctx, req)}
	}
}
