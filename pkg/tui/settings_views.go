package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nodeconf/nodeconf-cli/pkg/locale"
	"github.com/nodeconf/nodeconf-cli/pkg/settings"
)

func (p *SettingsPage) View() string {
	props := p.Props()

	contentWidth := p.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var sections []string
	sections = append(sections, renderHeader(p.width, "", p.version))

	title := NewViewTitle(p.tr.T("title"))
	sections = append(sections, title.ViewWithAlignment(p.width))

	body := []string{p.renderStatus(props, contentWidth)}
	if props.ShowControls() {
		body = append(body,
			"",
			p.renderButtons(props),
			"",
			p.renderLanguageLine(),
			"",
			p.renderEditor(props),
		)
	} else {
		body = append(body, "", p.renderLanguageLine())
	}
	sections = append(sections, HeaderPaddingStyle.Render(strings.Join(body, "\n")))

	sections = append(sections, p.renderHelp())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if props.LanguageModalOpen {
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, p.languages.View())
	}
	return view
}

// renderStatus picks the status message by priority.
func (p *SettingsPage) renderStatus(props settings.Props, width int) string {
	wrap := func(style lipgloss.Style, text string) string {
		return style.Render(wordwrap.String(text, width))
	}

	switch props.Status() {
	case settings.StatusBlocked:
		return wrap(ErrorTextStyle, p.tr.T("configApiNotAvailable"))
	case settings.StatusLoading:
		return p.spinner.View() + " " + wrap(StatusTextStyle, p.tr.T("fetchingSettings"))
	case settings.StatusUnavailable:
		return wrap(WarningTextStyle, p.tr.T("settingsUnavailable"))
	case settings.StatusExternalChanges:
		return wrap(WarningTextStyle, p.tr.T("settingsHaveChanged"))
	case settings.StatusSaveFailed:
		return wrap(ErrorTextStyle, p.tr.T("errorOccured")) + "\n" +
			wrap(DetailTextStyle, p.tr.T("checkConsole"))
	case settings.StatusSaveSucceeded:
		return wrap(SuccessTextStyle, p.tr.T("changesSaved")) + "\n" +
			wrap(DetailTextStyle, p.tr.T("settingsWillBeUsedNextTime"))
	default:
		return wrap(DescriptionStyle, p.tr.T("configDescription"))
	}
}

func (p *SettingsPage) renderButtons(props settings.Props) string {
	reset := ButtonStyle(props.ResetDisabled(), false, false).
		Render(p.tr.T("reset"))

	var label string
	switch props.SaveLabel() {
	case settings.SaveLabelCheck:
		label = "✓"
	case settings.SaveLabelSaving:
		label = p.spinner.View() + " " + p.tr.T("saving")
	default:
		label = p.tr.T("save")
	}
	succeeded := props.SaveLabel() == settings.SaveLabelCheck
	save := ButtonStyle(props.SaveDisabled(), props.SaveDanger(), succeeded).Render(label)

	return lipgloss.JoinHorizontal(lipgloss.Top, reset, "  ", save)
}

func (p *SettingsPage) renderLanguageLine() string {
	native := locale.NativeName(p.tr.Language())
	line := StatusTextStyle.Render(p.tr.TData("language", map[string]any{"Language": native}))
	edit := HelpKeyStyle.Render("[" + p.tr.T("actions.edit") + " ^l]")
	return line + "  " + edit
}

func (p *SettingsPage) renderEditor(props settings.Props) string {
	border := ActiveBorderStyle
	if props.EditorReadOnly() {
		border = InactiveBorderStyle
	}
	return border.Render(p.editor.View())
}

func (p *SettingsPage) renderHelp() string {
	return HelpBorderStyle.
		Width(p.width - 2).
		Render(p.help.View(p.keys))
}
