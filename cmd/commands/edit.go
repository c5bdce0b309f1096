package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/internal/cli"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the node configuration in $EDITOR",
		Long: `Open the node configuration in $EDITOR and save it when the editor exits.

The edited document is checked before it is saved. Nothing is written when
it is unchanged or not valid JSON.`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	cc := ContextFromFlags(cmd)
	if err := cc.ValidateProject(); err != nil {
		return err
	}

	logs, err := NewLogManager(cc.LoadSettingsWithDefault())
	if err != nil {
		return err
	}
	defer logs.Close()

	st, err := cc.OpenStore(logs.Logger("store"))
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cli.CommandTimeout)
	err = st.Load(ctx)
	cancel()
	if err != nil {
		return describeStoreError(err, st.Backend().Name())
	}
	original := st.Snapshot().Text()

	edited, err := cli.NewEditorLauncher().OpenTempFile("nodeconf-*.json", original)
	if err != nil {
		return err
	}

	if edited == original {
		cli.PrintWarning("No changes; nothing saved")
		return nil
	}
	if err := cli.ValidateConfig(edited); err != nil {
		return fmt.Errorf("not saved: %w", err)
	}

	return saveConfig(cmd, st, edited)
}
