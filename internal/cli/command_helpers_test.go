package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeconf/nodeconf-cli/pkg/files"
	"github.com/nodeconf/nodeconf-cli/pkg/models"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

func TestCommandContext_ValidateProject(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.Error(t, NewCommandContext(Overrides{}).ValidateProject())
	assert.NoError(t, NewCommandContext(Overrides{Path: "config.json"}).ValidateProject())
	assert.NoError(t, NewCommandContext(Overrides{APIURL: "http://127.0.0.1:5001"}).ValidateProject())

	require.NoError(t, files.InitProjectStructure())
	assert.NoError(t, NewCommandContext(Overrides{}).ValidateProject())
}

func TestCommandContext_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, files.InitProjectStructure())

	tests := []struct {
		name        string
		overrides   Overrides
		wantBackend string
		check       func(t *testing.T, s *models.Settings)
	}{
		{
			name:        "defaults",
			wantBackend: models.BackendFile,
		},
		{
			name:        "path implies file",
			overrides:   Overrides{Path: "/etc/node/config.json"},
			wantBackend: models.BackendFile,
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "/etc/node/config.json", s.Store.Path)
			},
		},
		{
			name:        "api implies api",
			overrides:   Overrides{APIURL: "http://node:5001"},
			wantBackend: models.BackendAPI,
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "http://node:5001", s.Store.APIURL)
			},
		},
		{
			name:        "explicit backend wins",
			overrides:   Overrides{APIURL: "http://node:5001", Backend: models.BackendFile},
			wantBackend: models.BackendFile,
		},
		{
			name:        "language",
			overrides:   Overrides{Language: "fr"},
			wantBackend: models.BackendFile,
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "fr", s.UI.Language)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCommandContext(tt.overrides).LoadSettingsWithDefault()
			assert.Equal(t, tt.wantBackend, s.Store.Backend)
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}

func TestCommandContext_NewBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, files.InitProjectStructure())

	backend, err := NewCommandContext(Overrides{}).NewBackend(nil)
	require.NoError(t, err)
	fb, ok := backend.(*store.FileBackend)
	require.True(t, ok)
	assert.Equal(t, filepath.Clean(files.DefaultConfigPath()), fb.Path())

	backend, err = NewCommandContext(Overrides{APIURL: "http://127.0.0.1:5001"}).NewBackend(nil)
	require.NoError(t, err)
	assert.IsType(t, &store.APIBackend{}, backend)

	_, err = NewCommandContext(Overrides{Backend: "s3"}).NewBackend(nil)
	assert.Error(t, err)
}

func TestCommandContext_OpenStoreLoads(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, files.InitProjectStructure())

	st, err := NewCommandContext(Overrides{}).OpenStore(nil)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Load(t.Context()))
	assert.Equal(t, "{}\n", st.Snapshot().Text())
}

func TestEditorLauncher_OpenTempFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor.sh")
	// Replaces the file content like a user would.
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf '{\"edited\":true}' > \"$1\"\n"), 0755))

	launcher := &EditorLauncher{DefaultEditor: script}
	edited, err := launcher.OpenTempFile("nodeconf-*.json", "{}")
	require.NoError(t, err)
	assert.Equal(t, `{"edited":true}`, edited)
}

func TestEditorLauncher_CommandSplitsArgs(t *testing.T) {
	launcher := &EditorLauncher{DefaultEditor: "code --wait"}
	cmd := launcher.Command("/tmp/x.json")
	assert.Equal(t, []string{"code", "--wait", "/tmp/x.json"}, cmd.Args)
}
