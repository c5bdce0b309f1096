package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/internal/cli"
)

var (
	showCopy bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the node configuration",
		Long: `Print the node configuration from the configured backend.

Examples:
  # Show the configuration
  nodeconf show

  # Show it as YAML
  nodeconf show -o yaml

  # Read from a running node and copy to the clipboard
  nodeconf show --api http://127.0.0.1:5001 --copy`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().BoolVarP(&showCopy, "copy", "c", false, "Copy the configuration to the clipboard")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cc := ContextFromFlags(cmd)
	if err := cc.ValidateProject(); err != nil {
		return err
	}

	format, err := outputFormat(cmd)
	if err != nil {
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
	defer cancel()

	if err := st.Load(ctx); err != nil {
		return describeStoreError(err, st.Backend().Name())
	}
	text := st.Snapshot().Text()

	out := cmd.OutOrStdout()
	if format == string(cli.FormatText) {
		fmt.Fprintf(out, "# %s (%s)\n", st.Backend().Name(), cli.FormatBytes(int64(len(text))))
	}
	if err := cli.OutputConfig(out, format, text); err != nil {
		return err
	}

	if showCopy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Configuration copied to clipboard")
	}
	return nil
}
