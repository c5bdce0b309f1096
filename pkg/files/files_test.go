package files

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeconf/nodeconf-cli/pkg/models"
)

func TestInitProjectStructure(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.False(t, ProjectExists())
	require.NoError(t, InitProjectStructure())
	assert.True(t, ProjectExists())

	config, err := os.ReadFile(DefaultConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(config))

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestInitProjectStructure_KeepsExistingFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(NodeconfDir, 0755))
	require.NoError(t, os.WriteFile(DefaultConfigPath(), []byte(`{"x":1}`), 0644))

	require.NoError(t, InitProjectStructure())

	config, err := os.ReadFile(DefaultConfigPath())
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, string(config))
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	settings := models.DefaultSettings()
	settings.Store.Backend = models.BackendAPI
	settings.Store.PollInterval = 2 * time.Second
	settings.UI.Language = "de"
	require.NoError(t, WriteSettings(settings))

	loaded, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestReadSettings_PartialFileKeepsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(NodeconfDir, 0755))
	require.NoError(t, os.WriteFile(SettingsPath(), []byte("ui:\n  language: fr\n"), 0644))

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, "fr", settings.UI.Language)
	assert.Equal(t, models.BackendFile, settings.Store.Backend)
	assert.Equal(t, "info", settings.Logging.Level)
}

func TestReadSettingsWithDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, models.DefaultSettings(), ReadSettingsWithDefault())
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, DefaultConfigPath(), ConfigPath(nil))
	assert.Equal(t, DefaultConfigPath(), ConfigPath(models.DefaultSettings()))

	s := models.DefaultSettings()
	s.Store.Path = "/var/lib/node/config.json"
	assert.Equal(t, "/var/lib/node/config.json", ConfigPath(s))
}
