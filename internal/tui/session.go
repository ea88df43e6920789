// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// SessionModel shows the signed-in user and the push connection state.
type SessionModel struct {
	ctx        context.Context
	controller service.ClientSessionController

	state models.ClientSessionState

	confirming bool
	overlay    *errorOverlayModel
	busy       bool

	status    string
	statusSeq int
}

func NewSessionModel(ctx context.Context, controller service.ClientSessionController) *SessionModel {
	return &SessionModel{ctx: ctx, controller: controller}
}

func (m *SessionModel) Init() tea.Cmd {
	return nil
}

func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStateMsg:
		m.state = msg.state
		if !m.state.IsAuthenticated() {
			m.confirming = false
			m.overlay = nil
			m.busy = false
		}
		return m, nil

	case sessionNotice:
		return m, m.setStatus(msg.text)

	case verifyDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.overlay = newErrorOverlay("проверка токена", msg.err)
			return m, nil
		}
		return m, m.setStatus("Токен действителен")

	case logoutDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.overlay = newErrorOverlay("выход", msg.err)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus("Не удалось скопировать токен: " + msg.err.Error())
		}
		return m, m.setStatus("Токен скопирован в буфер обмена")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if m.overlay.dismissed(msg) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			m.busy = true
			return m, m.cmdLogout()
		case key.Matches(msg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	if !m.state.IsAuthenticated() || m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.copy):
		token := m.state.Token
		return m, func() tea.Msg { return copiedMsg{err: writeClipboard(token)} }
	case key.Matches(msg, keys.verify):
		m.busy = true
		return m, m.cmdVerify()
	case key.Matches(msg, keys.profile):
		if hasEditableProfile(m.state.User.Role) {
			return m, navigate(pageProfile)
		}
	case key.Matches(msg, keys.logout):
		m.confirming = true
	}
	return m, nil
}

func (m *SessionModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirming {
		return confirmModel{question: "Выйти из аккаунта?"}.View()
	}

	var b strings.Builder
	if !m.state.IsAuthenticated() {
		b.WriteString("Сессия не активна")
		return renderPage("СЕССИЯ", b.String(), "")
	}

	user := m.state.User
	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", user.ID)},
		{"Email", user.Email},
		{"Роль", roleTitle(user.Role)},
		{"Email подтверждён", yesNo(user.IsEmailVerified)},
	}
	switch user.Role {
	case models.RoleRecruiter:
		rows = append(rows,
			[2]string{"Компания", valueOrDash(user.CompanyName)},
			[2]string{"Отрасль", valueOrDash(user.Sector)},
		)
	default:
		birthDate := ""
		if user.BirthDate != nil {
			birthDate = user.BirthDate.String()
		}
		rows = append(rows,
			[2]string{"Имя", valueOrDash(strings.TrimSpace(user.FirstName + " " + user.LastName))},
			[2]string{"Дата рождения", valueOrDash(birthDate)},
		)
	}
	rows = append(rows,
		[2]string{"Токен", fitText(m.state.Token, 40)},
		[2]string{"Соединение", connectionTitle(m.state.Connected)},
	)

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-18s │ %s\n", row[0], row[1]))
	}

	if m.busy {
		b.WriteString("\nЗапрос к серверу...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "c: копировать токен │ r: проверить │ l: выйти │ v: версия"
	if hasEditableProfile(user.Role) {
		hotKeys = "c: копировать токен │ r: проверить │ p: профиль │ l: выйти │ v: версия"
	}
	return renderPage("СЕССИЯ: "+user.DisplayName(), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *SessionModel) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *SessionModel) cmdVerify() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return verifyDoneMsg{err: controller.Verify(ctx)}
	}
}

func (m *SessionModel) cmdLogout() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return logoutDoneMsg{err: controller.Logout(ctx)}
	}
}

func hasEditableProfile(role models.Role) bool {
	return role == models.RoleCandidate || role == models.RoleRecruiter
}

func roleTitle(role models.Role) string {
	switch role {
	case models.RoleCandidate:
		return "соискатель"
	case models.RoleRecruiter:
		return "работодатель"
	case models.RoleAdmin:
		return "администратор"
	case models.RoleSuperAdmin:
		return "суперадминистратор"
	default:
		return role.String()
	}
}

func connectionTitle(connected bool) string {
	if connected {
		return "в сети"
	}
	return "нет соединения"
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}
