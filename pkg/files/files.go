package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nodeconf/nodeconf-cli/pkg/models"
)

const (
	NodeconfDir  = ".nodeconf"
	SettingsFile = "settings.yaml"
	ConfigFile   = "config.json"
	LogFile      = "nodeconf.log"
)

// InitProjectStructure creates the .nodeconf directory with default settings
// and an empty node configuration. Existing files are left alone.
func InitProjectStructure() error {
	if err := os.MkdirAll(NodeconfDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", NodeconfDir, err)
	}

	if _, err := os.Stat(SettingsPath()); errors.Is(err, fs.ErrNotExist) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	if _, err := os.Stat(DefaultConfigPath()); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(DefaultConfigPath(), []byte("{}\n"), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", DefaultConfigPath(), err)
		}
	}

	return nil
}

// ProjectExists reports whether the .nodeconf directory is present
func ProjectExists() bool {
	info, err := os.Stat(NodeconfDir)
	return err == nil && info.IsDir()
}

func SettingsPath() string {
	return filepath.Join(NodeconfDir, SettingsFile)
}

func DefaultConfigPath() string {
	return filepath.Join(NodeconfDir, ConfigFile)
}

func LogPath() string {
	return filepath.Join(NodeconfDir, LogFile)
}

// ConfigPath resolves the node configuration file for settings
func ConfigPath(settings *models.Settings) string {
	if settings != nil && settings.Store.Path != "" {
		return settings.Store.Path
	}
	return DefaultConfigPath()
}

// ReadSettings loads settings.yaml. Missing fields keep their defaults.
func ReadSettings() (*models.Settings, error) {
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// ReadSettingsWithDefault loads settings or returns the defaults on error
func ReadSettingsWithDefault() *models.Settings {
	settings, err := ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}

func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(NodeconfDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", NodeconfDir, err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", SettingsPath(), err)
	}
	return nil
}
