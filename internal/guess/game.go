// Package guess implements the number-guessing game loop: a secret is drawn
// once per run and the player submits guesses until one matches. The engine
// is decoupled from the terminal so the loop can be driven from tests.
package guess

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DefaultMax is the upper bound of the secret range when none is given.
const DefaultMax = 100

// Outcome is the result of comparing a guess against the secret.
type Outcome int

const (
	// TooSmall means the guess was below the secret.
	TooSmall Outcome = iota
	// TooBig means the guess was above the secret.
	TooBig
	// Win means the guess matched the secret.
	Win
)

// State is the game's lifecycle state. There are exactly two: the game is
// collecting guesses, or it has been won. Won is terminal.
type State int

const (
	// StateGuessing is the initial state; input is still being collected.
	StateGuessing State = iota
	// StateWon is the terminal state; no transition leaves it.
	StateWon
)

// feedback strings. The exact wording follows the classic game; only the
// semantic content (too small / too big / win) matters to callers.
const (
	msgBanner = "Guess the number!"
	msgPrompt = "Please input your guess."
	msgSmall  = "Too small!"
	msgBig    = "Too big!"
	msgWin    = "You win!"
)

// ErrStreamClosed is returned by Run when the input stream ends before the
// secret has been guessed. There is no recovery path for losing the
// interactive channel.
var ErrStreamClosed = errors.New("input closed before the number was guessed")

// Styler decorates a feedback line before it is written. The game calls it
// with the outcome and the plain message; implementations typically add
// terminal colors. A nil Styler leaves messages unchanged.
type Styler func(o Outcome, msg string) string

// Game holds the secret for one run. The secret is immutable for the
// lifetime of the game, so resubmitting the same wrong guess always yields
// the same feedback.
type Game struct {
	secret uint32
	state  State
	style  Styler
}

// New draws a secret uniformly from [1, max] and returns a game in the
// guessing state. max must be at least 1.
func New(max uint32) (*Game, error) {
	if max < 1 {
		return nil, fmt.Errorf("invalid upper bound %d: must be at least 1", max)
	}
	return &Game{secret: rand.Uint32N(max) + 1}, nil
}

// SetStyler installs a feedback decorator. Pass nil for plain output.
func (g *Game) SetStyler(s Styler) {
	g.style = s
}

// Secret returns the drawn secret. Used by the debug flag and by tests.
func (g *Game) Secret() uint32 {
	return g.secret
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// ParseGuess interprets a line of input as a guess: surrounding whitespace
// is trimmed and the rest must parse as an unsigned base-10 32-bit integer.
// Empty lines, non-numeric text and overflow are all parse errors.
func ParseGuess(line string) (uint32, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, errors.New("empty guess")
	}
	n, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse guess %q: %w", trimmed, err)
	}
	return uint32(n), nil
}

// Evaluate compares a parsed guess against the secret. A Win moves the game
// to StateWon; any other outcome leaves it guessing. Evaluating after the
// game is won still reports Win for the secret without changing state.
func (g *Game) Evaluate(guess uint32) Outcome {
	switch {
	case guess < g.secret:
		return TooSmall
	case guess > g.secret:
		return TooBig
	default:
		g.state = StateWon
		return Win
	}
}

// Run drives the interactive loop: prompt, read a line, parse, compare.
// Unparseable input is discarded and the player is re-prompted; the failure
// is not counted, logged or otherwise surfaced. Accepted guesses are echoed
// back before their feedback. The loop has no iteration bound and ends only
// when the guess equals the secret, or with an error if the input stream
// fails or closes first.
func (g *Game) Run(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, msgBanner)

	reader := bufio.NewReader(r)
	for g.state != StateWon {
		fmt.Fprintln(w, msgPrompt)

		// ReadString has no line-length limit; a line of any length is
		// still just a guess to parse or discard.
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return ErrStreamClosed
			}
			return fmt.Errorf("read guess: %w", err)
		}

		guess, err := ParseGuess(line)
		if err != nil {
			// Silent retry: the next prompt is the only signal.
			continue
		}

		fmt.Fprintf(w, "You guessed: %d\n", guess)
		fmt.Fprintln(w, g.render(g.Evaluate(guess)))
	}
	return nil
}

func (g *Game) render(o Outcome) string {
	var msg string
	switch o {
	case TooSmall:
		msg = msgSmall
	case TooBig:
		msg = msgBig
	case Win:
		msg = msgWin
	}
	if g.style != nil {
		return g.style(o, msg)
	}
	return msg
}
