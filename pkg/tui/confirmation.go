package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation dialog
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string // shown in orange
	Destructive bool   // Yes is red, No is green
	YesLabel    string
	NoLabel     string
	Width       int
	Height      int
}

// ConfirmationModel handles yes/no dialogs
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the dialog with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// ShowDialog is Show with the common fields spelled out.
func (m *ConfirmationModel) ShowDialog(title, message, warning string, destructive bool, width, height int, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Title:       title,
		Message:     message,
		Warning:     warning,
		Destructive: destructive,
		Width:       width,
		Height:      height,
	}, onConfirm, onCancel)
}

func (m *ConfirmationModel) Hide() {
	m.active = false
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events while the dialog is shown
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	height := m.config.Height
	if height == 0 {
		height = 10
	}
	inner := width - 8

	center := func(s string) string {
		return lipgloss.NewStyle().
			Width(inner).
			Align(lipgloss.Center).
			Render(s)
	}

	var content strings.Builder
	if m.config.Title != "" {
		content.WriteString(center(headerStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}
	if m.config.Message != "" {
		content.WriteString(center(m.config.Message))
		content.WriteString("\n")
	}
	if m.config.Warning != "" {
		content.WriteString("\n")
		content.WriteString(center(warningStyle.Render(m.config.Warning)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	labels := fmt.Sprintf("(%s / %s)",
		strings.ToLower(m.config.YesLabel),
		strings.ToLower(m.config.NoLabel))
	content.WriteString(center(formatConfirmOptions(m.config.Destructive) + "  " + labels))

	return ActiveBorderStyle.
		Width(width).
		Height(height).
		Padding(0, 2).
		Render(content.String())
}

// formatConfirmOptions renders the y/n hint. Destructive dialogs show the
// confirming key in red.
func formatConfirmOptions(destructive bool) string {
	yesColor, noColor := ColorActive, ColorInactive
	if destructive {
		yesColor, noColor = ColorDanger, ColorSuccess
	}
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(yesColor)).Bold(true).Render("[y]")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(noColor)).Bold(true).Render("[n]")
	return yes + " " + no
}
