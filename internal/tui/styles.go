package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // purple
	colorSecondary = lipgloss.Color("#10B981") // green
	colorWarning   = lipgloss.Color("#F59E0B") // yellow
	colorDanger    = lipgloss.Color("#EF4444") // red
	colorMuted     = lipgloss.Color("#6B7280") // gray
	colorText      = lipgloss.Color("#F9FAFB") // white
	colorXP        = lipgloss.Color("#FBBF24") // gold

	// Title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Mission card
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	xpStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorXP)

	// Step indicator
	stepActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	stepDoneStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	stepIdleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Status badges
	statusOnlineStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#000000")).
				Background(colorSecondary).
				Padding(0, 1)

	statusAwayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(colorWarning).
			Padding(0, 1)

	// Mission list
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	doneStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Danger/warning text
	dangerStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true).
			MarginTop(1)

	// Completion overlay
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorSecondary).
			Padding(1, 2).
			Align(lipgloss.Center)
)
