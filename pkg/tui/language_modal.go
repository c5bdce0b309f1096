package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nodeconf/nodeconf-cli/pkg/locale"
)

type languageItem struct {
	lang    locale.Language
	current bool
}

func (i languageItem) FilterValue() string {
	return i.lang.NativeName + " " + i.lang.EnglishName
}

// languageDelegate draws one language per line with the active one marked.
type languageDelegate struct{}

func (d languageDelegate) Height() int                             { return 1 }
func (d languageDelegate) Spacing() int                            { return 0 }
func (d languageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d languageDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(languageItem)
	if !ok {
		return
	}

	marker := "  "
	if li.current {
		marker = "● "
	}
	line := fmt.Sprintf("%s%-12s %s", marker, li.lang.NativeName, DetailTextStyle.Render(li.lang.EnglishName))

	style := lipgloss.NewStyle().PaddingLeft(1)
	if index == m.Index() {
		style = style.
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)
	}
	fmt.Fprint(w, style.Render(line))
}

// languageModal lets the user pick the UI language.
type languageModal struct {
	list        list.Model
	title       string
	description string
	closeLabel  string
}

func newLanguageModal(tr *locale.Translator) languageModal {
	current := tr.Language().String()

	langs := locale.Supported()
	items := make([]list.Item, 0, len(langs))
	selected := 0
	for i, l := range langs {
		items = append(items, languageItem{lang: l, current: l.Code == current})
		if l.Code == current {
			selected = i
		}
	}

	l := list.New(items, languageDelegate{}, 36, len(items))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Select(selected)

	return languageModal{
		list:        l,
		title:       tr.T("languageModal.title"),
		description: tr.T("languageModal.description"),
		closeLabel:  tr.T("actions.close"),
	}
}

func (m languageModal) Update(msg tea.KeyMsg) (languageModal, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return languageModalClosedMsg{} }
	case "enter":
		item, ok := m.list.SelectedItem().(languageItem)
		if !ok {
			return m, nil
		}
		code := item.lang.Code
		return m, func() tea.Msg { return languageSelectedMsg{code: code} }
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m languageModal) Selected() string {
	if item, ok := m.list.SelectedItem().(languageItem); ok {
		return item.lang.Code
	}
	return ""
}

func (m languageModal) View() string {
	var b strings.Builder
	b.WriteString(GetActiveHeaderStyle(true).Render(m.title))
	b.WriteString("\n")
	b.WriteString(DescriptionStyle.Render(m.description))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n\n")
	b.WriteString(formatHelpText([]string{"↑/↓ move", "enter select", "esc " + strings.ToLower(m.closeLabel)}))

	return ActiveBorderStyle.
		Padding(1, 2).
		Render(b.String())
}
