package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI. The palette follows the app's
// parchment-and-gold look: warm golds on dark brown.
var (
	ColorGold      = lipgloss.Color("#bf953f")
	ColorParchment = lipgloss.Color("#e0c9a6")
	ColorBrown     = lipgloss.Color("#3e2723")
	ColorDarkBrown = lipgloss.Color("#1a100e")
	ColorRed       = lipgloss.Color("#b91c1c")
	ColorGreen     = lipgloss.Color("#15803d")
	ColorGray      = lipgloss.Color("#8a7b66")
	ColorDimGray   = lipgloss.Color("#5c5142")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGold)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorGold)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorParchment)

	VerseNumStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorParchment)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true).
			Reverse(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	LockBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	LiveBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	AdminBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorDarkBrown).
			Background(ColorGold).
			Bold(true).
			Padding(0, 1)

	ChatSelfStyle = lipgloss.NewStyle().
			Foreground(ColorParchment).
			Bold(true)

	ChatOtherStyle = lipgloss.NewStyle().
			Foreground(ColorGold)

	InputLabelStyle = lipgloss.NewStyle().
			Foreground(ColorGold)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorGold)
)
