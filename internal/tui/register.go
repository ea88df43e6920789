package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the password registration page of one role. The form
// carries the credential pair, a password confirmation and the optional
// profile fields of the role.
type RegisterModel struct {
	ctx        context.Context
	controller service.ClientSessionController
	role       models.Role

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, controller service.ClientSessionController, role models.Role) *RegisterModel {
	fields := []field{
		{label: "Email", placeholder: "email", limit: 254},
		{label: "Пароль", placeholder: "password", limit: 72, secret: true},
		{label: "Повтор пароля", placeholder: "repeat password", limit: 72, secret: true},
	}
	if role == models.RoleRecruiter {
		fields = append(fields,
			field{label: "Компания", placeholder: "company", limit: 200},
			field{label: "Отрасль", placeholder: "sector", limit: 100},
		)
	} else {
		fields = append(fields,
			field{label: "Имя", placeholder: "first name", limit: 100},
			field{label: "Фамилия", placeholder: "last name", limit: 100},
			field{label: "Дата рождения", placeholder: models.DateLayout, limit: 10},
		)
	}

	return &RegisterModel{
		ctx:        ctx,
		controller: controller,
		role:       role,
		form:       newForm(fields...),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	return m, m.form.update(msg)
}

// submit validates the form and builds the registration command.
func (m *RegisterModel) submit() (tea.Cmd, string) {
	email, password := m.form.value(0), m.form.raw(1)
	if email == "" || password == "" {
		return nil, "Email и пароль обязательны"
	}
	if password != m.form.raw(2) {
		return nil, "Пароли не совпадают"
	}

	ctx, controller := m.ctx, m.controller
	if m.role == models.RoleRecruiter {
		req := models.RecruiterRegistrationRequest{
			Email:       email,
			Password:    password,
			CompanyName: m.form.value(3),
			Sector:      m.form.value(4),
		}
		return func() tea.Msg {
			return authDoneMsg{err: controller.RegisterRecruiter(ctx, req)}
		}, ""
	}

	birthDate, ok := parseBirthDate(m.form.value(5))
	if !ok {
		return nil, "Дата рождения должна быть в формате " + models.DateLayout
	}
	req := models.CandidateRegistrationRequest{
		Email:     email,
		Password:  password,
		FirstName: m.form.value(3),
		LastName:  m.form.value(4),
		BirthDate: birthDate,
	}
	return func() tea.Msg {
		return authDoneMsg{err: controller.RegisterCandidate(ctx, req)}
	}, ""
}

func (m *RegisterModel) View() string {
	title := "РЕГИСТРАЦИЯ СОИСКАТЕЛЯ"
	if m.role == models.RoleRecruiter {
		title = "РЕГИСТРАЦИЯ РАБОТОДАТЕЛЯ"
	}

	var b strings.Builder
	b.WriteString(m.form.View())
	submitStatus(&b, "Зарегистрироваться", m.submitting, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

// parseBirthDate accepts an empty value as "not set".
func parseBirthDate(v string) (models.Date, bool) {
	if v == "" {
		return models.Date{}, true
	}
	t, err := time.Parse(models.DateLayout, v)
	if err != nil {
		return models.Date{}, false
	}
	return models.NewDate(t), true
}
