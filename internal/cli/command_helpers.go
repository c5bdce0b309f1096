package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/nodeconf/nodeconf-cli/pkg/files"
	"github.com/nodeconf/nodeconf-cli/pkg/models"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

// Overrides are command line values that win over settings.yaml
type Overrides struct {
	Backend  string
	Path     string
	APIURL   string
	Language string
}

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Overrides   Overrides
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext(overrides Overrides) *CommandContext {
	return &CommandContext{
		ProjectPath: files.NodeconfDir,
		Overrides:   overrides,
	}
}

// ValidateProject ensures the project is initialized. An explicit --api or
// --path is enough to run without one.
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if c.Overrides.Path == "" && c.Overrides.APIURL == "" {
		if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
			return fmt.Errorf("no .nodeconf directory found. Run 'nodeconf init' first")
		}
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings, falls back to the defaults and
// applies the command line overrides
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings := files.ReadSettingsWithDefault()
	applyOverrides(settings, c.Overrides)

	c.Settings = settings
	return settings
}

func applyOverrides(settings *models.Settings, o Overrides) {
	if o.Path != "" {
		settings.Store.Backend = models.BackendFile
		settings.Store.Path = o.Path
	}
	if o.APIURL != "" {
		settings.Store.Backend = models.BackendAPI
		settings.Store.APIURL = o.APIURL
	}
	// An explicit backend beats what the path/url flags implied
	if o.Backend != "" {
		settings.Store.Backend = o.Backend
	}
	if o.Language != "" {
		settings.UI.Language = o.Language
	}
}

// NewBackend builds the configuration backend selected by settings
func (c *CommandContext) NewBackend(logger *slog.Logger) (store.Backend, error) {
	settings := c.LoadSettingsWithDefault()
	if err := ValidateBackend(settings.Store.Backend); err != nil {
		return nil, err
	}

	switch settings.Store.Backend {
	case models.BackendAPI:
		poll := settings.Store.PollInterval
		if poll <= 0 {
			poll = store.DefaultPollInterval
		}
		return store.NewAPIBackend(settings.Store.APIURL, poll, logger), nil
	default:
		return store.NewFileBackend(files.ConfigPath(settings), logger), nil
	}
}

// OpenStore builds the backend and wraps it in a store
func (c *CommandContext) OpenStore(logger *slog.Logger) (*store.Store, error) {
	backend, err := c.NewBackend(logger)
	if err != nil {
		return nil, err
	}
	return store.New(backend, logger), nil
}

// CommandTimeout bounds one-shot backend calls from commands
const CommandTimeout = 30 * time.Second

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// Command builds the editor invocation for path
func (e *EditorLauncher) Command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) > 1 {
		return exec.Command(parts[0], append(parts[1:], path)...)
	}
	return exec.Command(e.DefaultEditor, path)
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	editorCmd := e.Command(path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

// OpenTempFile creates a temp file with content, opens it and returns the
// edited content. The temp file is removed afterwards.
func (e *EditorLauncher) OpenTempFile(pattern, content string) (string, error) {
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmpFile.Name()
	defer os.Remove(name)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := e.OpenFile(name); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(edited), nil
}
