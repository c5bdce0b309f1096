package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_QuitWithoutChanges(t *testing.T) {
	page, fs, _ := newTestPage(t, docSnapshot(`{}`))
	app := NewApp(page, nil)

	_, cmd := app.Update(keyMsg(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, fs.unsubscribed)
}

func TestApp_QuitWithChangesAsks(t *testing.T) {
	page, fs, _ := newTestPage(t, docSnapshot(`1`))
	app := NewApp(page, nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app.Update(runes("2"))

	_, cmd := app.Update(keyMsg(tea.KeyCtrlC))
	assert.Nil(t, cmd)
	require.True(t, app.Confirming())
	assert.Contains(t, app.View(), "UNSAVED CHANGES")

	_, cmd = app.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, app.Confirming())
	assert.Zero(t, fs.unsubscribed)

	app.Update(keyMsg(tea.KeyCtrlC))
	_, cmd = app.Update(runes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, page.Session().Closed())
}

func TestApp_StatusMessage(t *testing.T) {
	page, _, _ := newTestPage(t, docSnapshot(`{}`))
	app := NewApp(page, nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := app.Update(StatusMsg("hello"))
	require.NotNil(t, cmd)
	assert.Equal(t, "hello", app.StatusMessage())
	assert.Contains(t, app.View(), "hello")

	// A newer message outlives the older clear.
	app.Update(StatusMsg("again"))
	app.Update(clearStatusMsg{id: 1})
	assert.Equal(t, "again", app.StatusMessage())

	app.Update(clearStatusMsg{id: 2})
	assert.Empty(t, app.StatusMessage())
}

func TestApp_ViewBeforeSize(t *testing.T) {
	page, _, _ := newTestPage(t, docSnapshot(`{}`))
	assert.Equal(t, "Loading...", NewApp(page, nil).View())
}
