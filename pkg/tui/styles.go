package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241"
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorPrimary  = "37" // Aqua for the primary action
	ColorMuted    = "238"
)

var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	HeaderPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	// Status region
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	StatusTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	WarningTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger))

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)).
			Bold(true)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess)).
				Bold(true)

	DetailTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Help line
	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive))

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Status bar shown by the app for transient notices
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// ButtonStyle renders a button according to the page's button policy.
func ButtonStyle(disabled, danger, success bool) lipgloss.Style {
	bg := ColorPrimary
	switch {
	case disabled:
		bg = ColorMuted
	case danger:
		bg = ColorDanger
	case success:
		bg = ColorSuccess
	}

	fg := ColorWhite
	if disabled {
		fg = ColorDim
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 2).
		Bold(!disabled)
}

// Dynamic styles that depend on state
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}
