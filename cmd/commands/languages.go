package commands

import (
	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/internal/cli"
	"github.com/nodeconf/nodeconf-cli/pkg/locale"
)

var (
	languageSet string
)

// NewLanguagesCommand creates the languages command
func NewLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List or set the UI language",
		Long: `List the languages the settings editor can be shown in, or set one.

Examples:
  nodeconf languages
  nodeconf languages --set de`,
		Args: cobra.NoArgs,
		RunE: runLanguages,
	}

	cmd.Flags().StringVar(&languageSet, "set", "", "Language code to store in settings.yaml")

	return cmd
}

func runLanguages(cmd *cobra.Command, args []string) error {
	if languageSet != "" {
		if err := cli.ValidateLanguage(languageSet); err != nil {
			return err
		}
		if err := ContextFromFlags(cmd).ValidateProject(); err != nil {
			return err
		}
		tag := locale.Match(languageSet)
		if err := PersistLanguage(tag.String()); err != nil {
			return err
		}
		cli.PrintSuccess("Language set to %s", locale.NativeName(tag))
		return nil
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	langs := locale.Supported()
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, langs)
	}

	current := locale.Match(ContextFromFlags(cmd).LoadSettingsWithDefault().UI.Language).String()
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("", "CODE", "NAME", "ENGLISH")
	for _, l := range langs {
		marker := ""
		if l.Code == current {
			marker = "*"
		}
		table.Row(marker, l.Code, l.NativeName, l.EnglishName)
	}
	table.Flush()
	return nil
}
