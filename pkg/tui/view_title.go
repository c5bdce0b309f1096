package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle is the page title block shown under the header.
type ViewTitle struct {
	text string
}

func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{text: text}
}

func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	return titleStyle.Render("\n" + v.text + "\n")
}

// ViewWithAlignment left aligns the title inside width with side padding.
func (v *ViewTitle) ViewWithAlignment(width int) string {
	if v.text == "" {
		return ""
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		PaddingRight(2).
		Render(v.View())
}

// ViewTitleHeight is one line of text plus vertical padding.
func ViewTitleHeight() int {
	return 3
}
