package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// configEditor is the raw JSON editing widget. It is rebuilt from scratch
// whenever the session hands out a new remount token, which drops cursor
// position and any internal widget state.
type configEditor struct {
	textarea textarea.Model
	token    string
	readOnly bool
	width    int
	height   int
}

func newConfigEditor(value, token string, width, height int) configEditor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.SetValue(value)
	ta.Focus()

	return configEditor{
		textarea: ta,
		token:    token,
		width:    width,
		height:   height,
	}
}

// Sync rebuilds the widget when token changed and applies the read-only
// flag. It reports whether a rebuild happened.
func (e *configEditor) Sync(value, token string, readOnly bool) bool {
	rebuilt := false
	if token != e.token {
		*e = newConfigEditor(value, token, e.width, e.height)
		rebuilt = true
	}

	e.readOnly = readOnly
	if readOnly {
		e.textarea.Blur()
	} else if !e.textarea.Focused() {
		e.textarea.Focus()
	}
	return rebuilt
}

func (e *configEditor) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	e.width = width
	e.height = height
	e.textarea.SetWidth(width)
	e.textarea.SetHeight(height)
}

func (e *configEditor) Value() string {
	return e.textarea.Value()
}

func (e *configEditor) Token() string {
	return e.token
}

func (e *configEditor) ReadOnly() bool {
	return e.readOnly
}

// Update forwards msg to the textarea unless the editor is read-only and
// reports whether the text changed.
func (e *configEditor) Update(msg tea.Msg) (bool, tea.Cmd) {
	if e.readOnly {
		return false, nil
	}
	before := e.textarea.Value()
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e.textarea.Value() != before, cmd
}

func (e *configEditor) View() string {
	return e.textarea.View()
}
