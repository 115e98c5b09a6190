package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattvp/gobook/internal/shapes"
	"github.com/mattvp/gobook/internal/term"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Walk through structs and methods",
	Long: `Prints the struct-and-methods walkthrough: a Rectangle with value
methods and a Square constructor, plus building and updating a User record.`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}

func runShapes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, term.Heading("Structs and methods:"))
	shapes.Demo(out)
	return nil
}
