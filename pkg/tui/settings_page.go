package tui

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nodeconf/nodeconf-cli/pkg/locale"
	"github.com/nodeconf/nodeconf-cli/pkg/settings"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

// ConfigStore is what the settings page needs from the configuration store.
type ConfigStore interface {
	Snapshot() store.Snapshot
	Subscribe() store.Subscription
	Unsubscribe(store.Subscription)
	Save(text string)
}

// SettingsPage edits the node configuration as raw JSON.
type SettingsPage struct {
	store   ConfigStore
	sub     store.Subscription
	session *settings.Session
	tr      *locale.Translator

	editor    configEditor
	spinner   spinner.Model
	help      help.Model
	keys      settingsKeyMap
	languages languageModal

	onLanguage  func(code string) error
	copyText    func(string) error
	now         func() time.Time
	logger      *slog.Logger
	sessionOpts []settings.Option
	version     string

	width  int
	height int
}

// PageOption configures a SettingsPage.
type PageOption func(*SettingsPage)

// WithPageClock replaces time.Now for the page and its session.
func WithPageClock(now func() time.Time) PageOption {
	return func(p *SettingsPage) {
		p.now = now
	}
}

// WithLanguageHandler is called after the user picks a language, usually
// to persist the choice.
func WithLanguageHandler(fn func(code string) error) PageOption {
	return func(p *SettingsPage) {
		p.onLanguage = fn
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) PageOption {
	return func(p *SettingsPage) {
		p.copyText = fn
	}
}

func WithPageLogger(logger *slog.Logger) PageOption {
	return func(p *SettingsPage) {
		p.logger = logger
	}
}

// WithSessionOptions passes extra options to the underlying session.
func WithSessionOptions(opts ...settings.Option) PageOption {
	return func(p *SettingsPage) {
		p.sessionOpts = append(p.sessionOpts, opts...)
	}
}

func WithVersion(version string) PageOption {
	return func(p *SettingsPage) {
		p.version = version
	}
}

// NewSettingsPage subscribes to cs and opens a session on its current
// snapshot. Close must be called when the page goes away.
func NewSettingsPage(cs ConfigStore, tr *locale.Translator, opts ...PageOption) *SettingsPage {
	p := &SettingsPage{
		store:    cs,
		tr:       tr,
		help:     help.New(),
		keys:     newSettingsKeyMap(),
		copyText: clipboard.WriteAll,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.spinner = spinner.New()
	p.spinner.Spinner = spinner.MiniDot
	p.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	// Subscribe before reading the snapshot so no update falls in between.
	p.sub = cs.Subscribe()

	sessionOpts := append([]settings.Option{
		settings.WithClock(p.now),
		settings.WithLogger(p.logger),
	}, p.sessionOpts...)
	p.session = settings.NewSession(cs.Snapshot(), cs, sessionOpts...)

	state := p.session.State()
	p.editor = newConfigEditor(state.Draft, state.RemountToken, p.width-4, p.editorHeight())
	return p
}

func (p *SettingsPage) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(p.sub),
		p.spinner.Tick,
		textarea.Blink,
	)
}

// Session exposes the underlying session, mostly for tests.
func (p *SettingsPage) Session() *settings.Session {
	return p.session
}

// Props returns the view props at the current time.
func (p *SettingsPage) Props() settings.Props {
	return p.session.Props(p.now())
}

// HasUnsavedChanges reports whether quitting would lose edits.
func (p *SettingsPage) HasUnsavedChanges() bool {
	return p.session.State().HasLocalChanges
}

// Translator returns the page's translator.
func (p *SettingsPage) Translator() *locale.Translator {
	return p.tr
}

// Close unsubscribes from the store and drops scheduled work. It is safe to
// call more than once.
func (p *SettingsPage) Close() {
	if p.session.Closed() {
		return
	}
	p.session.Close()
	p.store.Unsubscribe(p.sub)
	p.logger.Debug("settings page closed")
}

func (p *SettingsPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.editor.SetSize(width-4, p.editorHeight())
	p.help.Width = width
}

func (p *SettingsPage) editorHeight() int {
	// header, title, status, buttons, language line, help and borders
	return p.height - 16
}

func (p *SettingsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.session.Closed() {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil

	case snapshotMsg:
		cmds := []tea.Cmd{waitForSnapshot(p.sub)}
		for _, pending := range p.session.Observe(msg.snap) {
			cmds = append(cmds, schedulePending(pending))
		}
		p.syncEditor()
		return p, tea.Batch(cmds...)

	case subscriptionClosedMsg:
		return p, nil

	case pendingDueMsg:
		if p.session.Fire(msg.id) && msg.kind == settings.PendingReset {
			p.syncEditor()
		}
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case languageSelectedMsg:
		return p, p.selectLanguage(msg.code)

	case languageModalClosedMsg:
		p.session.CloseLanguageModal()
		return p, nil

	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}

	_, cmd := p.editor.Update(msg)
	return p, cmd
}

func (p *SettingsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.session.State().LanguageModalOpen {
		var cmd tea.Cmd
		p.languages, cmd = p.languages.Update(msg)
		return cmd
	}

	props := p.Props()
	switch {
	case key.Matches(msg, p.keys.Save):
		if props.ShowControls() && !props.SaveDisabled() {
			p.session.OnSave()
		}
		return nil

	case key.Matches(msg, p.keys.Reset):
		if props.ShowControls() && !props.ResetDisabled() {
			p.session.OnReset()
			p.syncEditor()
		}
		return nil

	case key.Matches(msg, p.keys.Language):
		p.languages = newLanguageModal(p.tr)
		p.session.OpenLanguageModal()
		return nil

	case key.Matches(msg, p.keys.Copy):
		return p.copyDraft()
	}

	if !props.ShowControls() {
		return nil
	}
	changed, cmd := p.editor.Update(msg)
	if changed {
		p.session.OnChange(p.editor.Value())
	}
	return cmd
}

// syncEditor rebuilds the editor when the session issued a new remount
// token and applies the read-only state.
func (p *SettingsPage) syncEditor() {
	state := p.session.State()
	if p.editor.Sync(state.Draft, state.RemountToken, p.Props().EditorReadOnly()) {
		p.logger.Debug("editor remounted", "token", state.RemountToken)
	}
}

func (p *SettingsPage) selectLanguage(code string) tea.Cmd {
	p.session.CloseLanguageModal()
	p.tr.SetLanguage(code)
	p.logger.Info("language changed", "language", p.tr.Language().String())

	if p.onLanguage == nil {
		return nil
	}
	if err := p.onLanguage(p.tr.Language().String()); err != nil {
		p.logger.Error("failed to persist language", "error", err)
		return showStatus(err.Error())
	}
	return nil
}

func (p *SettingsPage) copyDraft() tea.Cmd {
	if err := p.copyText(p.session.State().Draft); err != nil {
		p.logger.Warn("clipboard copy failed", "error", err)
		return showStatus(p.tr.T("copyFailed"))
	}
	return showStatus(p.tr.T("copied"))
}
