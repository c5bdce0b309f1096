package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeconf/nodeconf-cli/pkg/models"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    slog.Level
		wantErr bool
	}{
		{raw: "debug", want: slog.LevelDebug},
		{raw: " INFO ", want: slog.LevelInfo},
		{raw: "", want: slog.LevelInfo},
		{raw: "warning", want: slog.LevelWarn},
		{raw: "error", want: slog.LevelError},
		{raw: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLevel(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManager_LogToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "logs", "nodeconf.log")
	m := NewManager()
	require.NoError(t, m.Configure(models.LoggingSettings{Level: "debug", LogToFile: true}, path))

	m.Logger("store").Debug("config saved", "bytes", 12)
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "component=store")
	assert.Contains(t, string(data), `msg="config saved"`)
	assert.Contains(t, string(data), "bytes=12")
}

func TestManager_LevelFilters(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "nodeconf.log")
	m := NewManager()
	require.NoError(t, m.Configure(models.LoggingSettings{Level: "warn", LogToFile: true}, path))

	m.Logger("tui").Info("hidden")
	m.Logger("tui").Warn("shown")
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestManager_RejectsUnknownLevel(t *testing.T) {
	m := NewManager()
	err := m.Configure(models.LoggingSettings{Level: "loud", LogToFile: true}, filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}
