// Package color provides color detection and theming for CLI output.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Profile detects the current color profile based on environment variables and flags.
// Returns true if color output should be enabled.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - noColorFlag is true (--no-color CLI flag)
func Profile(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// IsTerminal returns true if the given file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Enabled combines Profile with terminal detection for the given output.
func Enabled(out *os.File, noColorFlag bool) bool {
	return Profile(noColorFlag) && IsTerminal(out)
}

// Theme holds lipgloss styles for check and rules output.
type Theme struct {
	Allow   lipgloss.Style
	Deny    lipgloss.Style
	Hit     lipgloss.Style
	Miss    lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Allow:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // bright green
		Deny:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Hit:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // bright yellow
		Miss:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // gray
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Label:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
}

// Verdict renders an allow/deny word with the matching style.
func (t Theme) Verdict(denied bool) string {
	if denied {
		return t.Deny.Render("deny")
	}

	return t.Allow.Render("allow")
}

// Mark renders a yes/no signal result.
func (t Theme) Mark(hit bool) string {
	if hit {
		return t.Hit.Render("match")
	}

	return t.Miss.Render("-")
}
