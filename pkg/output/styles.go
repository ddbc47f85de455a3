// Package output renders cfglink's user-facing terminal output.
//
// This is deliberately separate from pkg/logging: zerolog carries
// diagnostics for debugging, while this package prints the lines a user
// acts on (links made, failures, the final summary).
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Semantic styles with adaptive colors for light and dark terminals.
var (
	StyleHeader = lipgloss.NewStyle().Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})

	StyleError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})

	StyleInfo = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "246"})
)

func init() {
	// Degrade to plain text when stdout is not a terminal (pipes, CI).
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
