package main

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	accent = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#A58CFF"}
	teal   = lipgloss.AdaptiveColor{Light: "#0E7C7B", Dark: "#4FD1C5"}
	amber  = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6C453"}
	muted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6B6B6B"}
	red    = lipgloss.Color("#E05252")
	green  = lipgloss.Color("#38A169")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Margin(1, 0, 0, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(teal).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(teal)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent).Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 2)

	contentStyle = lipgloss.NewStyle().Margin(1, 0, 0, 2)

	statsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(teal).
			Padding(0, 2).
			MarginRight(1)

	communityBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(amber).
				PaddingLeft(1)

	errorStyle   = lipgloss.NewStyle().Foreground(red)
	successStyle = lipgloss.NewStyle().Foreground(green)
	helpStyle    = lipgloss.NewStyle().Foreground(muted).Margin(1, 0, 0, 2)
)
