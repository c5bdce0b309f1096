package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type settingsKeyMap struct {
	Save     key.Binding
	Reset    key.Binding
	Language key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func newSettingsKeyMap() settingsKeyMap {
	return settingsKeyMap{
		Save:     Shortcuts.Save.Binding("save"),
		Reset:    Shortcuts.Reset.Binding("reset"),
		Language: Shortcuts.Language.Binding("language"),
		Copy:     Shortcuts.Copy.Binding("copy"),
		Quit:     Shortcuts.Quit.Binding("quit"),
	}
}

// ShortHelp implements help.KeyMap.
func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Reset, k.Language, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// formatHelpText joins "key action" pairs into one help line.
func formatHelpText(items []string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		k, desc, ok := strings.Cut(item, " ")
		if !ok {
			parts = append(parts, HelpDescStyle.Render(item))
			continue
		}
		parts = append(parts, HelpKeyStyle.Render(k)+" "+HelpDescStyle.Render(desc))
	}
	return strings.Join(parts, HelpDescStyle.Render(" • "))
}
