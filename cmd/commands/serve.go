package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/internal/nodeapi"
	"github.com/nodeconf/nodeconf-cli/pkg/files"
	"github.com/nodeconf/nodeconf-cli/pkg/models"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

var (
	serveAddr    string
	serveBlocked bool
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configuration file over the node config API",
		Long: `Serve the configuration file over the node config API.

This lets the api backend run against a local file, for example while
testing the settings editor without a node.

Examples:
  nodeconf serve --addr 127.0.0.1:5001
  nodeconf --api http://127.0.0.1:5001`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:5001", "Listen address")
	cmd.Flags().BoolVar(&serveBlocked, "blocked", false, "Refuse config calls like a locked down node")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cc := ContextFromFlags(cmd)
	if err := cc.ValidateProject(); err != nil {
		return err
	}

	settings := cc.LoadSettingsWithDefault()
	if settings.Store.Backend != models.BackendFile {
		return fmt.Errorf("serve needs the file backend, got %s", settings.Store.Backend)
	}

	logs, err := NewLogManager(settings)
	if err != nil {
		return err
	}
	defer logs.Close()

	backend := store.NewFileBackend(files.ConfigPath(settings), logs.Logger("store"))
	server := nodeapi.New(backend, logs.Logger("api"), nodeapi.WithBlockedConfig(serveBlocked))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s (ctrl+c to stop)\n", backend.Path(), serveAddr)
	return server.ListenAndServe(ctx, serveAddr)
}

