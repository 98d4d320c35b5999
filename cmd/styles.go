package cmd

import "charm.land/lipgloss/v2"

// Minimal terminal styling for the few messages pfp prints itself; all
// interactive UI belongs to fzf and tmux.
var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// ErrorStyle is used by main to render fatal errors.
func ErrorStyle() lipgloss.Style {
	return errorStyle
}
