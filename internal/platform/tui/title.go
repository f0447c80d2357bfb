package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			Padding(0, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1"))

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

// titleView renders the title screen with the full key reference.
func (m Model) titleView() string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(m.game.Title()),
		"",
		taglineStyle.Render("Dodge the bullets. They speed up and multiply the longer you last."),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		promptStyle.Render("Press Enter to start"),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}
