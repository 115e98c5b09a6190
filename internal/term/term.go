// Package term handles terminal detection and output styling for the
// drills. Styles degrade to plain text when stdout is not a terminal, so
// piped output and test captures stay stable.
package term

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	xterm "golang.org/x/term"

	"github.com/mattvp/gobook/internal/guess"
)

var (
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	headStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal. The guess command only enables colored feedback when they are.
func IsInteractive() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd())) && xterm.IsTerminal(int(os.Stdout.Fd()))
}

// OutcomeStyler colors guess feedback: hints in yellow, the win in bold
// green.
func OutcomeStyler(o guess.Outcome, msg string) string {
	if o == guess.Win {
		return winStyle.Render(msg)
	}
	return hintStyle.Render(msg)
}

// Heading styles a drill section heading.
func Heading(s string) string {
	return headStyle.Render(s)
}
