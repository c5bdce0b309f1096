package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/internal/cli"
	"github.com/nodeconf/nodeconf-cli/internal/logging"
	"github.com/nodeconf/nodeconf-cli/pkg/files"
	"github.com/nodeconf/nodeconf-cli/pkg/models"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

// ContextFromFlags builds a command context from the root persistent flags.
func ContextFromFlags(cmd *cobra.Command) *cli.CommandContext {
	flags := cmd.Flags()
	backend, _ := flags.GetString("backend")
	path, _ := flags.GetString("path")
	api, _ := flags.GetString("api")
	lang, _ := flags.GetString("lang")

	return cli.NewCommandContext(cli.Overrides{
		Backend:  backend,
		Path:     path,
		APIURL:   api,
		Language: lang,
	})
}

// NewLogManager configures logging from settings. File logging needs an
// initialized project; without one logs are discarded.
func NewLogManager(settings *models.Settings) (*logging.Manager, error) {
	cfg := settings.Logging
	if !files.ProjectExists() {
		cfg.LogToFile = false
	}

	m := logging.NewManager()
	if err := m.Configure(cfg, files.LogPath()); err != nil {
		return nil, err
	}
	return m, nil
}

// PersistLanguage stores the UI language in settings.yaml. Command line
// overrides are not written back.
func PersistLanguage(code string) error {
	if !files.ProjectExists() {
		return nil
	}
	settings := files.ReadSettingsWithDefault()
	settings.UI.Language = code
	return files.WriteSettings(settings)
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = string(cli.FormatText)
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// describeStoreError turns backend sentinel errors into something a user
// can act on.
func describeStoreError(err error, backend string) error {
	switch {
	case errors.Is(err, store.ErrBlocked):
		return fmt.Errorf("the node's config API is not available at %s; check that the node allows access to its configuration", backend)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("no configuration found at %s; run 'nodeconf init' or pass --path", backend)
	default:
		return fmt.Errorf("%s: %w", backend, err)
	}
}
