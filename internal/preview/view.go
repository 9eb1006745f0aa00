package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const title = "Storefront • Buttons"

// View renders the interactive gallery.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render(title), m.rows(true)}
	if strings.TrimSpace(m.status) != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// StaticView renders every item without cursor or help, for output that is
// not a terminal.
func (m Model) StaticView() string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), m.rows(false))
}

func (m Model) rows(interactive bool) string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		focused := interactive && i == m.cursor
		marker := "  "
		if focused {
			marker = cursorStyle.Render("▸ ")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center,
			marker,
			nameStyle.Render(item.Name),
			m.render(i, focused),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) render(i int, focused bool) string {
	if m.results[i].Empty() {
		return emptyStyle.Render(EmptyLabel(m.results[i]))
	}
	return Button(m.theme, m.items[i].Config, focused)
}
