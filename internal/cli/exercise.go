package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattvp/gobook/internal/exercise"
	"github.com/mattvp/gobook/internal/term"
)

var exerciseFizz uint

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Run the compound-types exercises",
	Long: `Prints the compound-types exercises: arrays, pairs, pointers,
slices, string building, fizzbuzz, a generic pick, explicit numeric widening
and a 3x3 matrix transpose.`,
	Args: cobra.NoArgs,
	RunE: runExercise,
}

func init() {
	exerciseCmd.Flags().UintVar(&exerciseFizz, "fizz", 20, "fizzbuzz upper bound")

	rootCmd.AddCommand(exerciseCmd)
}

func runExercise(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, term.Heading("Array assignments:"))
	exercise.ArrayAssign(out)

	fmt.Fprintln(out, term.Heading("Pairs:"))
	exercise.PairDemo(out)

	fmt.Fprintln(out, term.Heading("Pointers:"))
	exercise.PointerDemo(out)

	fmt.Fprintln(out, term.Heading("Slices:"))
	exercise.SliceDemo(out)

	fmt.Fprintln(out, term.Heading("Strings and builders:"))
	exercise.StringDemo(out)

	fmt.Fprintln(out, term.Heading("Fizzbuzz:"))
	exercise.FizzBuzzTo(out, exerciseFizz)

	fmt.Fprintln(out, term.Heading("Generics:"))
	fmt.Fprintf(out, "coin toss: %s\n", exercise.PickOne("heads", "tails"))
	fmt.Fprintf(out, "cash prize: %d\n", exercise.PickOne(500, 1000))

	fmt.Fprintln(out, term.Heading("Explicit conversions:"))
	exercise.WidenDemo(out)

	fmt.Fprintln(out, term.Heading("Matrix transposition:"))
	exercise.MatrixDemo(out)

	return nil
}
