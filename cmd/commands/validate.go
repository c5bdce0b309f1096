package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/internal/cli"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|-]...",
		Short: "Check that configuration documents are well-formed",
		Long: `Check that configuration documents are well-formed JSON.

Without arguments the configuration from the configured backend is checked.
Use - to read from stdin.

Examples:
  nodeconf validate
  nodeconf validate ./config.json
  cat config.json | nodeconf validate -`,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return validateStored(cmd)
	}

	failed := 0
	for _, arg := range args {
		text, err := readConfigArg(cmd, arg)
		if err != nil {
			return err
		}
		if err := cli.ValidateConfig(text); err != nil {
			cli.PrintError("%s: %v", arg, err)
			failed++
			continue
		}
		cli.PrintSuccess("%s is valid", arg)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
	}
	return nil
}

func validateStored(cmd *cobra.Command) error {
	cc := ContextFromFlags(cmd)
	if err := cc.ValidateProject(); err != nil {
		return err
	}

	st, err := cc.OpenStore(nil)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cli.CommandTimeout)
	defer cancel()
	if err := st.Load(ctx); err != nil {
		return describeStoreError(err, st.Backend().Name())
	}

	if err := cli.ValidateConfig(st.Snapshot().Text()); err != nil {
		return fmt.Errorf("%s: %w", st.Backend().Name(), err)
	}
	cli.PrintSuccess("%s is valid", st.Backend().Name())
	return nil
}

// readConfigArg reads a document from a file path or stdin for "-".
func readConfigArg(cmd *cobra.Command, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	if err := cli.ValidateFilePath(arg); err != nil {
		return "", err
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return string(data), nil
}
