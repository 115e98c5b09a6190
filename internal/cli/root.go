package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattvp/gobook/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gobook",
	Short: "Interactive drills for practicing language fundamentals",
	Long: `Gobook is a collection of small self-contained drills: a number
guessing game, walkthroughs of variables, structs and enums, and a set of
compound-type exercises. Each drill runs straight through, prints
illustrative output and exits.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetVerbose()
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("gobook version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
