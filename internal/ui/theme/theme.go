package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — kid-friendly, bright but not garish
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Validation states
var (
	Valid = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Warn = lipgloss.NewStyle().
		Foreground(Warning)

	// Security marks injection detections; loud on purpose.
	Security = lipgloss.NewStyle().
			Foreground(Text).
			Background(Error).
			Bold(true).
			Padding(0, 1)
)
