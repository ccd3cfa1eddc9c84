package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: warm paper tones with a black progress ink.
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#111827") // Ink
	Accent    = lipgloss.Color("#EC4899") // Pink
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	Border    = lipgloss.Color("#334155") // Slate
	Track     = lipgloss.Color("#E6E6E6") // Unvisited progress line
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Question = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	SpeechBubble = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Foreground(Text).
			Padding(0, 1)
)

// Answer options
var (
	OptionIdle = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	OptionFocused = OptionIdle.
			BorderForeground(Primary)

	OptionSelected = OptionIdle.
			Foreground(BgDark).
			Background(Primary).
			BorderForeground(Primary).
			Bold(true)
)

// Components
var (
	ProgressDone = lipgloss.NewStyle().
			Background(Secondary)

	ProgressTodo = lipgloss.NewStyle().
			Background(Track)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	ScoreNumber = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)
