package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusMsgDuration = 3 * time.Second

// App hosts the settings page and owns app-wide concerns: quitting, the
// quit confirmation and the status bar.
type App struct {
	page    *SettingsPage
	confirm *ConfirmationModel
	keys    settingsKeyMap
	logger  *slog.Logger

	width     int
	height    int
	statusMsg string
	statusID  int
}

func NewApp(page *SettingsPage, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		page:    page,
		confirm: NewConfirmation(),
		keys:    newSettingsKeyMap(),
		logger:  logger,
	}
}

func (a *App) Init() tea.Cmd {
	return a.page.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Keep a row for the status bar
		a.page.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		if a.confirm.Active() {
			return a, a.confirm.Update(msg)
		}
		if key.Matches(msg, a.keys.Quit) {
			return a, a.requestQuit()
		}

	case StatusMsg:
		a.statusID++
		a.statusMsg = string(msg)
		return a, clearStatusAfter(a.statusID, statusMsgDuration)

	case clearStatusMsg:
		if msg.id == a.statusID {
			a.statusMsg = ""
		}
		return a, nil
	}

	_, cmd := a.page.Update(msg)
	return a, cmd
}

func (a *App) requestQuit() tea.Cmd {
	if !a.page.HasUnsavedChanges() {
		return a.quit()
	}

	tr := a.page.Translator()
	a.confirm.ShowDialog(
		tr.T("quit.title"),
		tr.T("quit.message"),
		tr.T("quit.warning"),
		true,
		60,
		9,
		a.quit,
		nil,
	)
	return nil
}

func (a *App) quit() tea.Cmd {
	a.logger.Info("quitting", "unsaved", a.page.HasUnsavedChanges())
	a.page.Close()
	return tea.Quit
}

// Confirming reports whether the quit dialog is shown.
func (a *App) Confirming() bool {
	return a.confirm.Active()
}

func (a *App) StatusMessage() string {
	return a.statusMsg
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.page.View()
	if a.confirm.Active() {
		content = lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, a.confirm.View())
	}

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, StatusBarStyle.Render(a.statusMsg))
	}
	return content
}
