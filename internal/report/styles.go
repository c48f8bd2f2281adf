// Package report renders analysis results as CSV and as styled terminal
// tables.
package report

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#00AAAA")
	mutedColor  = lipgloss.Color("#888888")
	textColor   = lipgloss.Color("#FFFFFF")
	errorColor  = lipgloss.Color("#A40000")
)

var (
	// TitleStyle renders section headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// KeyStyle renders row labels.
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(10)

	// ValueStyle renders values.
	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// ErrorStyle renders error prefixes.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Width(14)

	cellStyle = lipgloss.NewStyle().
			Width(14)
)
