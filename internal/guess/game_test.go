package guess

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrawsWithinRange(t *testing.T) {
	for range 50 {
		g, err := New(10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g.Secret(), uint32(1))
		assert.LessOrEqual(t, g.Secret(), uint32(10))
		assert.Equal(t, StateGuessing, g.State())
	}
}

func TestNewSingletonRange(t *testing.T) {
	g, err := New(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), g.Secret())
}

func TestNewRejectsZeroMax(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    uint32
		wantErr bool
	}{
		{"plain number", "42", 42, false},
		{"leading whitespace", "  7", 7, false},
		{"trailing newline", "99\n", 99, false},
		{"tabs both sides", "\t13\t", 13, false},
		{"zero", "0", 0, false},
		{"max uint32", "4294967295", 4294967295, false},
		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"non-numeric", "abc", 0, true},
		{"mixed", "4abc2", 0, true},
		{"negative", "-5", 0, true},
		{"overflow", "4294967296", 0, true},
		{"float", "4.2", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGuess(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateThreeWay(t *testing.T) {
	g := &Game{secret: 42}

	for guess := uint32(1); guess < 42; guess++ {
		assert.Equal(t, TooSmall, g.Evaluate(guess), "guess %d", guess)
		assert.Equal(t, StateGuessing, g.State())
	}
	for guess := uint32(43); guess <= 100; guess++ {
		assert.Equal(t, TooBig, g.Evaluate(guess), "guess %d", guess)
		assert.Equal(t, StateGuessing, g.State())
	}

	assert.Equal(t, Win, g.Evaluate(42))
	assert.Equal(t, StateWon, g.State())
}

func TestEvaluateIdempotentFeedback(t *testing.T) {
	g := &Game{secret: 42}
	for range 5 {
		assert.Equal(t, TooSmall, g.Evaluate(10))
	}
	assert.Equal(t, StateGuessing, g.State())
}

func TestWonStateIsTerminal(t *testing.T) {
	g := &Game{secret: 42}
	require.Equal(t, Win, g.Evaluate(42))
	require.Equal(t, StateWon, g.State())

	// No transition leaves Won.
	g.Evaluate(10)
	assert.Equal(t, StateWon, g.State())
}

func TestRunScenario(t *testing.T) {
	// Secret 42, inputs 10, 90, abc, 42: hint, hint, silent retry, win.
	g := &Game{secret: 42}
	in := strings.NewReader("10\n90\nabc\n42\n")
	var out bytes.Buffer

	err := g.Run(in, &out)
	require.NoError(t, err)
	assert.Equal(t, StateWon, g.State())

	got := out.String()
	assert.Contains(t, got, "You guessed: 10")
	assert.Contains(t, got, "Too small!")
	assert.Contains(t, got, "You guessed: 90")
	assert.Contains(t, got, "Too big!")
	assert.Contains(t, got, "You guessed: 42")
	assert.Contains(t, got, "You win!")

	// The bad line is silently retried: no feedback for it, just another
	// prompt, and it is never echoed.
	assert.NotContains(t, got, "abc")
	assert.Equal(t, 4, strings.Count(got, "Please input your guess."))

	// Feedback arrives in guess order.
	small := strings.Index(got, "Too small!")
	big := strings.Index(got, "Too big!")
	win := strings.Index(got, "You win!")
	assert.Less(t, small, big)
	assert.Less(t, big, win)
}

func TestRunStopsAtFirstWin(t *testing.T) {
	g := &Game{secret: 5}
	in := strings.NewReader("5\n1\n2\n3\n")
	var out bytes.Buffer

	require.NoError(t, g.Run(in, &out))
	assert.Equal(t, 1, strings.Count(out.String(), "Please input your guess."))
	assert.Equal(t, 1, strings.Count(out.String(), "You win!"))
}

func TestRunOverlongLineRetriesSilently(t *testing.T) {
	// A line longer than any internal buffer is still just an
	// unparseable guess: discard it and keep playing.
	g := &Game{secret: 42}
	in := strings.NewReader(strings.Repeat("a", 70000) + "\n42\n")
	var out bytes.Buffer

	err := g.Run(in, &out)
	require.NoError(t, err)
	assert.Equal(t, StateWon, g.State())
	assert.Contains(t, out.String(), "You win!")
	assert.Equal(t, 2, strings.Count(out.String(), "Please input your guess."))
}

func TestRunOverlongNumericLineRetriesSilently(t *testing.T) {
	g := &Game{secret: 42}
	in := strings.NewReader(strings.Repeat("9", 70000) + "\n42\n")
	var out bytes.Buffer

	require.NoError(t, g.Run(in, &out))
	assert.Equal(t, StateWon, g.State())
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	// A winning guess on the final, unterminated line still counts.
	g := &Game{secret: 42}
	in := strings.NewReader("42")
	var out bytes.Buffer

	require.NoError(t, g.Run(in, &out))
	assert.Equal(t, StateWon, g.State())
}

func TestRunStreamClosed(t *testing.T) {
	g := &Game{secret: 42}
	in := strings.NewReader("10\n")
	var out bytes.Buffer

	err := g.Run(in, &out)
	assert.ErrorIs(t, err, ErrStreamClosed)
	assert.Equal(t, StateGuessing, g.State())
}

func TestRunStylerApplied(t *testing.T) {
	g := &Game{secret: 7}
	g.SetStyler(func(o Outcome, msg string) string {
		return "[" + msg + "]"
	})
	in := strings.NewReader("7\n")
	var out bytes.Buffer

	require.NoError(t, g.Run(in, &out))
	assert.Contains(t, out.String(), "[You win!]")
}
