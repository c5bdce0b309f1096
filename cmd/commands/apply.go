package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/internal/cli"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

// NewApplyCommand creates the apply command
func NewApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file|->",
		Short: "Replace the node configuration with a document",
		Long: `Replace the node configuration with the given document.

The document must be valid JSON. You are asked to confirm unless --yes is set.

Examples:
  nodeconf apply ./config.json
  nodeconf apply --api http://127.0.0.1:5001 -y ./config.json`,
		Args: cobra.ExactArgs(1),
		RunE: runApply,
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	cc := ContextFromFlags(cmd)
	if err := cc.ValidateProject(); err != nil {
		return err
	}

	text, err := readConfigArg(cmd, args[0])
	if err != nil {
		return err
	}
	if err := cli.ValidateConfig(text); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
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
	if err == nil && st.Snapshot().Text() == text {
		cli.PrintWarning("%s already holds this configuration; nothing to save", st.Backend().Name())
		return nil
	}

	ok, err := cli.Confirm(fmt.Sprintf("Replace the configuration at %s?", st.Backend().Name()), false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintWarning("Cancelled")
		return nil
	}

	return saveConfig(cmd, st, text)
}

func saveConfig(cmd *cobra.Command, st *store.Store, text string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cli.CommandTimeout)
	defer cancel()

	if err := st.SaveSync(ctx, text); err != nil {
		return describeStoreError(err, st.Backend().Name())
	}
	cli.PrintSuccess("Configuration saved to %s", st.Backend().Name())
	cli.PrintInfo("The new settings will be used next time you restart the node.")
	return nil
}
