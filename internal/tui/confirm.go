package tui

import "fmt"

// confirmModel asks a yes/no question over the current page.
type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	yes, no := keys.yes.Help(), keys.no.Help()
	content := fmt.Sprintf("%s\n\n%s %s    %s %s", m.question, yes.Key, yes.Desc, no.Key, no.Desc)
	return overlayBoxStyle.Render(content)
}
