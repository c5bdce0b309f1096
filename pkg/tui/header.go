package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `┏┓┏┓┏┳┓┏┓┏┏┓┏┓╋
┛┗┗┛┗┻┗┗ ┗┗┛┛┗┛`

func renderHeader(width int, title, version string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	art := logo
	if version != "" {
		art += "\n" + DetailTextStyle.Render(version)
	}
	logoRendered := logoStyle.Render(art)

	var headerContent string
	if title != "" {
		// Title sits on the last logo row
		logoLines := strings.Split(art, "\n")
		titleRendered := titleStyle.Render(strings.Repeat("\n", len(logoLines)-1) + title)

		gap := width - 2 - lipgloss.Width(title) - lipgloss.Width(logoRendered)
		if gap < 1 {
			gap = 1
		}
		headerContent = lipgloss.JoinHorizontal(
			lipgloss.Top,
			titleRendered,
			strings.Repeat(" ", gap),
			logoRendered,
		)
	} else {
		rightAlign := lipgloss.NewStyle().
			Width(width - 2).
			Align(lipgloss.Right)

		headerContent = rightAlign.Render(logoRendered)
	}

	return headerPadding.Render(headerContent)
}
