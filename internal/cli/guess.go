package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattvp/gobook/internal/guess"
	"github.com/mattvp/gobook/internal/logging"
	"github.com/mattvp/gobook/internal/term"
)

var (
	guessMax   uint32
	guessDebug bool
)

var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Play the number guessing game",
	Long: `Draws a secret number between 1 and --max, then reads guesses from
stdin until one matches. Lower and higher guesses get a hint; input that is
not a positive integer is discarded and re-prompted without comment.

Example:
  gobook guess
  gobook guess --max 1000
  gobook guess --debug`,
	Args: cobra.NoArgs,
	RunE: runGuess,
}

func init() {
	guessCmd.Flags().Uint32Var(&guessMax, "max", guess.DefaultMax, "upper bound of the secret range")
	guessCmd.Flags().BoolVar(&guessDebug, "debug", false, "print the secret before the game starts")

	rootCmd.AddCommand(guessCmd)
}

func runGuess(cmd *cobra.Command, args []string) error {
	game, err := guess.New(guessMax)
	if err != nil {
		return err
	}

	logging.Debug("secret drawn", "secret", game.Secret(), "max", guessMax)

	out := cmd.OutOrStdout()
	if guessDebug {
		fmt.Fprintf(out, "The secret number is: %d\n", game.Secret())
	}

	if term.IsInteractive() {
		game.SetStyler(term.OutcomeStyler)
	}

	return game.Run(cmd.InOrStdin(), out)
}
