package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nodeconf/nodeconf-cli/cmd/commands"
	"github.com/nodeconf/nodeconf-cli/internal/cli"
	"github.com/nodeconf/nodeconf-cli/pkg/files"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "nodeconf",
	Short: "Terminal editor for a local node's configuration",
	Long: `nodeconf edits the configuration of a local node as raw JSON.

It reads the configuration from a file or from the node's config API, checks
every edit, notices when someone else changes the configuration and saves
with immediate feedback.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	RunE: runTUI,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new nodeconf project",
	Long:  `Creates the .nodeconf folder with default settings and an empty configuration`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing nodeconf in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .nodeconf folder")
		fmt.Printf("✓ Settings in %s, configuration in %s\n", files.SettingsPath(), files.DefaultConfigPath())
		fmt.Println("\nRun 'nodeconf' to start the settings editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nodeconf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nodeconf version %s\n", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("backend", "", "Configuration backend: file or api")
	flags.String("path", "", "Configuration file (implies --backend file)")
	flags.String("api", "", "Node API URL (implies --backend api)")
	flags.String("lang", "", "UI language, e.g. en or de")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "Only print errors")
	flags.BoolVar(&flagNoColor, "no-color", false, "Plain status prefixes")
	flags.BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewLanguagesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
