package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattvp/gobook/internal/concepts"
	"github.com/mattvp/gobook/internal/term"
)

var conceptsFib int

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Walk through variables, loops and recursion",
	Long: `Prints the common-programming-concepts walkthrough: variable
rebinding and shadowing, a labeled nested loop, a recursive fibonacci and
the twelve-days carol.`,
	Args: cobra.NoArgs,
	RunE: runConcepts,
}

func init() {
	conceptsCmd.Flags().IntVar(&conceptsFib, "fib", 6, "which fibonacci number to compute")

	rootCmd.AddCommand(conceptsCmd)
}

func runConcepts(cmd *cobra.Command, args []string) error {
	if conceptsFib < 0 {
		return fmt.Errorf("invalid --fib %d: must not be negative", conceptsFib)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, term.Heading("Variables and shadowing:"))
	concepts.Variables(out)

	fmt.Fprintln(out, term.Heading("Labeled loops:"))
	concepts.CountUp(out)

	fmt.Fprintln(out, term.Heading("Recursion:"))
	fmt.Fprintf(out, "fibonacci sequence of %d = %d\n", conceptsFib, concepts.Fibonacci(conceptsFib))

	fmt.Fprintln(out, term.Heading("Twelve days of Christmas:"))
	concepts.TwelveDays(out)

	return nil
}
