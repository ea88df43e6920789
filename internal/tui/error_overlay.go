package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// errorOverlayModel covers a page after a failed background action until
// the user dismisses it.
type errorOverlayModel struct {
	action  string
	message string
}

func newErrorOverlay(action string, err error) *errorOverlayModel {
	return &errorOverlayModel{action: action, message: humanizeError(err)}
}

// dismissed reports whether msg closes the overlay.
func (m *errorOverlayModel) dismissed(msg tea.KeyMsg) bool {
	return key.Matches(msg, keys.enter, keys.esc)
}

func (m *errorOverlayModel) View() string {
	content := fmt.Sprintf("Ошибка: %s\n\n%s\n\nenter / esc закрыть", m.action, m.message)
	return overlayBoxStyle.Render(content)
}
