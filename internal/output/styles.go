package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names and paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "resolved" module status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "implicit" module status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" module status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators, revisions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Module status constants.
const (
	StatusResolved = "resolved"
	StatusImplicit = "implicit"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"
)

// StatusStyle returns the lipgloss style for a given module status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusResolved:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusImplicit:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minModuleColumnWidth is the minimum width for the module column before the
// status suffix, so status words align consistently.
const minModuleColumnWidth = 48

// FormatModuleLine renders a module identifier with a right-aligned,
// color-coded status suffix.
//
// Format: m:<name> (<path>)  <status>
func FormatModuleLine(name, path, status string) string {
	ident := fmt.Sprintf("%s (%s)", name, path)

	padding := minModuleColumnWidth - len(ident)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("m:")
	styledIdent := StyleNoun.Render(ident)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledIdent + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
