package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/obedvega/hito/internal/config"
)

// Style definitions for the planner UI, built from the configured
// theme so users can recolor without recompiling.

// Tab borders - the active tab has no bottom border to "open" into content
var activeTabBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      " ",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┘",
	BottomRight: "└",
}

var tabBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┴",
	BottomRight: "┴",
}

type styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Content   lipgloss.Style
	Selected  lipgloss.Style
	Header    lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Dialog    lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	accent := lipgloss.Color(theme.Accent)
	border := lipgloss.Color(theme.Border)

	tabStyle := lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(accent).
		Padding(0, 1)

	return styles{
		Tab:       tabStyle,
		ActiveTab: tabStyle.Border(activeTabBorder, true),
		Content: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EAB308")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
	}
}
