package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: component and document names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for warnings about degenerate input.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (component names, document names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleWarning styles inline warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (markers, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeader styles table headers.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatDefault appends a dim "(default)" marker to name when isDefault.
func FormatDefault(name string, isDefault bool) string {
	if !isDefault {
		return name
	}
	return name + " " + StyleDim.Render("(default)")
}
