package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorWin    = lipgloss.Color("#FFD700") // Gold
	ColorLose   = lipgloss.Color("#DC143C") // Crimson
	ColorSetup  = lipgloss.Color("#00BFFF") // Deep Sky Blue
	ColorMyTurn = lipgloss.Color("#00FA9A") // Medium Spring Green
	ColorOpTurn = lipgloss.Color("#FF4500") // Orange Red

	// General Styles
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	StyleShipAfloat = lipgloss.NewStyle().Foreground(lipgloss.Color("212")) // Pink
	StyleShipSunk   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Strikethrough(true)
	StyleShotHit    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	StyleShotMiss   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))  // Cyan

	StyleCursor = lipgloss.NewStyle().
			Background(lipgloss.Color("252")).
			Foreground(lipgloss.Color("0"))

	StyleErrorBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")). // Red
			Foreground(lipgloss.Color("196")).
			Padding(1, 2).
			Align(lipgloss.Center)
)
