package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/mock"
	"github.com/MKhiriev/go-job-board/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	candidateUser = &models.UserView{ID: 2, Email: "c@jobs.io", Role: models.RoleCandidate, FirstName: "Ada", LastName: "Lovelace"}
	recruiterUser = &models.UserView{ID: 3, Email: "r@jobs.io", Role: models.RoleRecruiter, CompanyName: "Acme", Sector: "IT"}
	adminUser     = &models.UserView{ID: 1, Email: "root@jobs.io", Role: models.RoleAdmin}
)

func signedIn(user *models.UserView) models.ClientSessionState {
	return models.ClientSessionState{User: user, Token: "tok-1", Generation: 1, Connected: true}
}

func newController(t *testing.T) *mock.MockClientSessionController {
	t.Helper()
	return mock.NewMockClientSessionController(gomock.NewController(t))
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

// fill types values into the form fields of m, one per field.
func fill(t *testing.T, m tea.Model, values ...string) tea.Model {
	t.Helper()
	for i, v := range values {
		if i > 0 {
			m, _ = m.Update(keyTab)
		}
		if v != "" {
			m, _ = m.Update(keyRunes(v))
		}
	}
	return m
}

// run executes cmd and returns the message it produces. Batches are
// flattened; bubbles internals such as cursor blinks are dropped.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var out []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, run(t, c)...)
		}
	case nil:
	default:
		if ownMsg(msg) {
			out = append(out, msg)
		}
	}
	return out
}

func ownMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case NavigateTo, sessionStateMsg, forcedLogoutMsg, loginNotice, menuNotice, sessionNotice,
		authDoneMsg, profileDoneMsg, verifyDoneMsg, logoutDoneMsg, serverVersionMsg, copiedMsg, clearStatusMsg:
		return true
	default:
		return false
	}
}

// runOne is run for commands that produce exactly one message.
func runOne(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	msgs := run(t, cmd)
	require.Len(t, msgs, 1)
	return msgs[0]
}

func testPages(ctx context.Context, controller *mock.MockClientSessionController) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:              NewMenuModel(),
		pageLogin:             NewLoginModel(ctx, controller),
		pageGoogle:            NewGoogleModel(ctx, controller),
		pageRegisterCandidate: NewRegisterModel(ctx, controller, models.RoleCandidate),
		pageRegisterRecruiter: NewRegisterModel(ctx, controller, models.RoleRecruiter),
		pageSession:           NewSessionModel(ctx, controller),
		pageProfile:           NewProfileModel(ctx, controller),
	}
}
