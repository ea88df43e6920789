package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel runs the second registration step for the signed-in user.
// The form is rebuilt from the session user every time the page opens.
type ProfileModel struct {
	ctx        context.Context
	controller service.ClientSessionController

	state      models.ClientSessionState
	role       models.Role
	form       form
	submitting bool
	errMsg     string
}

func NewProfileModel(ctx context.Context, controller service.ClientSessionController) *ProfileModel {
	return &ProfileModel{ctx: ctx, controller: controller}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	if m.state.User == nil {
		m.role = ""
		m.form = form{}
		return nil
	}

	user := m.state.User
	m.role = user.Role
	if m.role == models.RoleRecruiter {
		m.form = newForm(
			field{label: "Компания", placeholder: "company", limit: 200},
			field{label: "Отрасль", placeholder: "sector", limit: 100},
		)
		m.form.inputs[0].SetValue(user.CompanyName)
		m.form.inputs[1].SetValue(user.Sector)
	} else {
		m.form = newForm(
			field{label: "Имя", placeholder: "first name", limit: 100},
			field{label: "Фамилия", placeholder: "last name", limit: 100},
			field{label: "Дата рождения", placeholder: models.DateLayout, limit: 10},
		)
		m.form.inputs[0].SetValue(user.FirstName)
		m.form.inputs[1].SetValue(user.LastName)
		if user.BirthDate != nil {
			m.form.inputs[2].SetValue(user.BirthDate.String())
		}
	}
	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStateMsg:
		m.state = msg.state
		return m, nil

	case profileDoneMsg:
		m.submitting = false
		switch {
		case errors.Is(msg.err, service.ErrStaleSession):
			// the session ended meanwhile; the router leaves this page
			return m, nil
		case msg.err != nil:
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageSession, Payload: sessionNotice{text: "Профиль сохранён"}}
		}

	case tea.KeyMsg:
		if len(m.form.inputs) == 0 {
			if key.Matches(msg, keys.esc) {
				return m, navigate(pageSession)
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
			return m, navigate(pageSession)
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
			cmd, errMsg := m.submit()
			m.errMsg = errMsg
			if cmd != nil {
				m.submitting = true
			}
			return m, cmd
		}
	}

	if len(m.form.inputs) == 0 {
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *ProfileModel) submit() (tea.Cmd, string) {
	ctx, controller := m.ctx, m.controller

	if m.role == models.RoleRecruiter {
		req := models.RecruiterProfileRequest{CompanyName: m.form.value(0), Sector: m.form.value(1)}
		if req.CompanyName == "" || req.Sector == "" {
			return nil, "Компания и отрасль обязательны"
		}
		return func() tea.Msg {
			return profileDoneMsg{err: controller.CompleteRecruiterProfile(ctx, req)}
		}, ""
	}

	req := models.CandidateProfileRequest{FirstName: m.form.value(0), LastName: m.form.value(1)}
	if req.FirstName == "" || req.LastName == "" {
		return nil, "Имя и фамилия обязательны"
	}
	birthDate, ok := parseBirthDate(m.form.value(2))
	if !ok {
		return nil, "Дата рождения должна быть в формате " + models.DateLayout
	}
	req.BirthDate = birthDate
	return func() tea.Msg {
		return profileDoneMsg{err: controller.CompleteCandidateProfile(ctx, req)}
	}, ""
}

func (m *ProfileModel) View() string {
	if len(m.form.inputs) == 0 {
		return renderPage("ПРОФИЛЬ", "Профиль недоступен", "esc: назад")
	}

	var b strings.Builder
	b.WriteString(m.form.View())
	submitStatus(&b, "Сохранить", m.submitting, m.errMsg)

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}
