package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeconf/nodeconf-cli/pkg/locale"
	"github.com/nodeconf/nodeconf-cli/pkg/settings"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

type fakeStore struct {
	snap         store.Snapshot
	sub          store.Subscription
	saved        []string
	unsubscribed int
}

func (f *fakeStore) Snapshot() store.Snapshot {
	return f.snap
}

func (f *fakeStore) Subscribe() store.Subscription {
	f.sub = make(store.Subscription, 8)
	return f.sub
}

func (f *fakeStore) Unsubscribe(sub store.Subscription) {
	f.unsubscribed++
	close(sub)
}

func (f *fakeStore) Save(text string) {
	f.saved = append(f.saved, text)
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func docSnapshot(text string) store.Snapshot {
	return store.Snapshot{Document: &store.Document{Text: text}}
}

func newTestPage(t *testing.T, snap store.Snapshot, opts ...PageOption) (*SettingsPage, *fakeStore, *testClock) {
	t.Helper()

	tr, err := locale.NewTranslator("en")
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}
	fs := &fakeStore{snap: snap}
	opts = append([]PageOption{
		WithPageClock(clock.Now),
		WithClipboard(func(string) error { return nil }),
	}, opts...)

	page := NewSettingsPage(fs, tr, opts...)
	page.SetSize(200, 60)
	return page, fs, clock
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSettingsPage_InitialView(t *testing.T) {
	page, _, _ := newTestPage(t, docSnapshot(`{"x":1}`))

	assert.Equal(t, `{"x":1}`, page.editor.Value())
	view := page.View()
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "The node configuration is a JSON document.")
	assert.Contains(t, view, "Language: English")
	assert.Contains(t, view, "Reset")
	assert.Contains(t, view, "Save")
}

func TestSettingsPage_StatusMessages(t *testing.T) {
	tests := []struct {
		name string
		snap store.Snapshot
		want string
	}{
		{
			name: "blocked",
			snap: store.Snapshot{Blocked: true},
			want: "config API is not available",
		},
		{
			name: "loading",
			snap: store.Snapshot{Loading: true},
			want: "Fetching settings",
		},
		{
			name: "unavailable",
			snap: store.Snapshot{LastError: errors.New("connection refused")},
			want: "Settings not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _, _ := newTestPage(t, tt.snap)
			view := page.View()
			assert.Contains(t, view, tt.want)
			assert.NotContains(t, view, "Reset")
		})
	}
}

func TestSettingsPage_EditAndSave(t *testing.T) {
	page, fs, _ := newTestPage(t, docSnapshot(`1`))

	page.Update(runes("2"))
	state := page.Session().State()
	assert.Equal(t, "12", state.Draft)
	assert.True(t, state.HasLocalChanges)
	assert.False(t, state.HasErrors)

	page.Update(keyMsg(tea.KeyCtrlS))
	assert.Equal(t, []string{"12"}, fs.saved)
}

func TestSettingsPage_InvalidDraftBlocksSave(t *testing.T) {
	page, fs, _ := newTestPage(t, docSnapshot(`{"x":1}`))

	page.Update(runes(","))
	assert.True(t, page.Session().State().HasErrors)
	assert.True(t, page.Props().SaveDisabled())

	page.Update(keyMsg(tea.KeyCtrlS))
	assert.Empty(t, fs.saved)
}

func TestSettingsPage_SaveWithoutChangesIsIgnored(t *testing.T) {
	page, fs, _ := newTestPage(t, docSnapshot(`{}`))

	page.Update(keyMsg(tea.KeyCtrlS))
	assert.Empty(t, fs.saved)
}

func TestSettingsPage_SaveSucceededThenResets(t *testing.T) {
	page, _, clock := newTestPage(t, docSnapshot(`1`))
	page.Update(runes("2"))
	page.Update(keyMsg(tea.KeyCtrlS))
	tokenBefore := page.editor.Token()

	// The store reports the save landing.
	saved := store.Snapshot{
		Document:        &store.Document{Text: "12"},
		SaveLastSuccess: clock.now,
	}
	_, cmd := page.Update(snapshotMsg{snap: saved})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, page.Session().PendingCount())

	view := page.View()
	assert.Contains(t, view, "Your changes have been saved.")
	assert.Contains(t, view, "✓")
	assert.NotEqual(t, tokenBefore, page.editor.Token())

	clock.now = clock.now.Add(settings.PauseAfterSave)
	page.Update(pendingDueMsg{id: 1, kind: settings.PendingReset})

	state := page.Session().State()
	assert.False(t, state.HasLocalChanges)
	assert.Equal(t, "12", state.Draft)
	assert.Equal(t, "12", page.editor.Value())
	assert.Zero(t, page.Session().PendingCount())
	assert.Contains(t, page.View(), "The node configuration is a JSON document.")
}

func TestSettingsPage_SaveFailedExpires(t *testing.T) {
	snap := docSnapshot(`1`)
	page, _, clock := newTestPage(t, snap)
	page.Update(runes("2"))

	failed := snap
	failed.SaveLastError = clock.now
	page.Update(snapshotMsg{snap: failed})

	assert.Contains(t, page.View(), "An error occurred while saving your changes.")
	assert.True(t, page.Props().SaveDanger())

	clock.now = clock.now.Add(settings.PauseAfterSave)
	page.Update(pendingDueMsg{id: 1, kind: settings.PendingExpire})

	assert.False(t, page.Props().HasSaveFailed)
	assert.Equal(t, "12", page.Session().State().Draft, "failure keeps the draft")
}

func TestSettingsPage_SavingMakesEditorReadOnly(t *testing.T) {
	snap := docSnapshot(`1`)
	page, _, _ := newTestPage(t, snap)

	saving := snap
	saving.Saving = true
	page.Update(snapshotMsg{snap: saving})
	assert.True(t, page.editor.ReadOnly())

	page.Update(runes("9"))
	assert.Equal(t, "1", page.editor.Value())
	assert.Contains(t, page.View(), "Saving")

	page.Update(snapshotMsg{snap: snap})
	assert.False(t, page.editor.ReadOnly())
}

func TestSettingsPage_ExternalChangeAndReset(t *testing.T) {
	page, _, _ := newTestPage(t, docSnapshot(`{"x":1}`))

	page.Update(snapshotMsg{snap: docSnapshot(`{"x":3}`)})
	assert.True(t, page.Session().State().HasExternalChanges)
	assert.Contains(t, page.View(), "The settings have changed")
	assert.Equal(t, `{"x":1}`, page.editor.Value(), "editor keeps the old text until reset")

	page.Update(keyMsg(tea.KeyCtrlR))
	assert.False(t, page.Session().State().HasExternalChanges)
	assert.Equal(t, `{"x":3}`, page.editor.Value())
}

func TestSettingsPage_ResetDisabledWhenClean(t *testing.T) {
	page, _, _ := newTestPage(t, docSnapshot(`{}`))
	token := page.editor.Token()

	page.Update(keyMsg(tea.KeyCtrlR))
	assert.Equal(t, token, page.editor.Token())
}

func TestSettingsPage_LanguageModal(t *testing.T) {
	var persisted string
	page, _, _ := newTestPage(t, docSnapshot(`{}`), WithLanguageHandler(func(code string) error {
		persisted = code
		return nil
	}))

	page.Update(keyMsg(tea.KeyCtrlL))
	require.True(t, page.Session().State().LanguageModalOpen)
	assert.Contains(t, page.View(), "Change language")

	page.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, "de", page.languages.Selected())

	_, cmd := page.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, languageSelectedMsg{}, msg)

	page.Update(msg)
	assert.False(t, page.Session().State().LanguageModalOpen)
	assert.Equal(t, "de", persisted)
	assert.Contains(t, page.View(), "Einstellungen")
	assert.Contains(t, page.View(), "Sprache: Deutsch")
}

func TestSettingsPage_LanguageModalEscape(t *testing.T) {
	page, _, _ := newTestPage(t, docSnapshot(`{}`))

	page.Update(keyMsg(tea.KeyCtrlL))
	_, cmd := page.Update(keyMsg(tea.KeyEsc))
	require.NotNil(t, cmd)
	page.Update(cmd())

	assert.False(t, page.Session().State().LanguageModalOpen)
	assert.Equal(t, "en", page.Translator().Language().String())
}

func TestSettingsPage_LanguagePersistError(t *testing.T) {
	page, _, _ := newTestPage(t, docSnapshot(`{}`), WithLanguageHandler(func(string) error {
		return errors.New("read-only settings")
	}))

	_, cmd := page.Update(languageSelectedMsg{code: "fr"})
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg("read-only settings"), cmd())
	assert.Equal(t, "fr", page.Translator().Language().String())
}

func TestSettingsPage_CopyDraft(t *testing.T) {
	var copied string
	page, _, _ := newTestPage(t, docSnapshot(`{"a":true}`), WithClipboard(func(text string) error {
		copied = text
		return nil
	}))

	_, cmd := page.Update(keyMsg(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg("Configuration copied to clipboard"), cmd())
	assert.Equal(t, `{"a":true}`, copied)
}

func TestSettingsPage_CloseStopsEverything(t *testing.T) {
	page, fs, clock := newTestPage(t, docSnapshot(`1`))
	page.Update(snapshotMsg{snap: store.Snapshot{
		Document:        &store.Document{Text: "2"},
		SaveLastSuccess: clock.now,
	}})
	require.Equal(t, 1, page.Session().PendingCount())

	page.Close()
	page.Close()
	assert.Equal(t, 1, fs.unsubscribed)
	assert.Zero(t, page.Session().PendingCount())

	_, cmd := page.Update(pendingDueMsg{id: 1, kind: settings.PendingReset})
	assert.Nil(t, cmd)
	assert.Equal(t, subscriptionClosedMsg{}, waitForSnapshot(fs.sub)())
}

func TestWaitForSnapshot(t *testing.T) {
	sub := make(store.Subscription, 2)
	sub <- "not a snapshot"
	sub <- docSnapshot("{}")

	msg := waitForSnapshot(sub)()
	got, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.Equal(t, "{}", got.snap.Text())
}
