package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/cmd/commands"
	"github.com/nodeconf/nodeconf-cli/pkg/locale"
	"github.com/nodeconf/nodeconf-cli/pkg/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cc := commands.ContextFromFlags(cmd)
	if err := cc.ValidateProject(); err != nil {
		return err
	}
	settings := cc.LoadSettingsWithDefault()

	logs, err := commands.NewLogManager(settings)
	if err != nil {
		return err
	}
	defer logs.Close()
	logger := logs.Logger("main")

	tr, err := locale.NewTranslator(settings.UI.Language)
	if err != nil {
		return err
	}

	st, err := cc.OpenStore(logs.Logger("store"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := st.Start(ctx); err != nil {
		return err
	}
	defer st.Close()

	page := tui.NewSettingsPage(st, tr,
		tui.WithPageLogger(logs.Logger("tui")),
		tui.WithLanguageHandler(commands.PersistLanguage),
		tui.WithVersion(version),
	)
	// Runs before st.Close so the subscription is gone before pubsub shuts down.
	defer page.Close()

	logger.Info("starting settings editor", "backend", st.Backend().Name(), "language", tr.Language().String())

	p := tea.NewProgram(tui.NewApp(page, logs.Logger("app")), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
