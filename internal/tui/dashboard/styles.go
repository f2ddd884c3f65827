package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	onColor      = lipgloss.Color("42")  // Green
	offColor     = lipgloss.Color("245") // Gray
	errorColor   = lipgloss.Color("196") // Red
	accentColor  = lipgloss.Color("212") // Pink

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	// Device row styles
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	// State glyph styles
	stateOnStyle = lipgloss.NewStyle().
			Foreground(onColor).
			Bold(true)

	stateOffStyle = lipgloss.NewStyle().
			Foreground(offColor)

	// History panel style
	historyStyle = lipgloss.NewStyle().
			Foreground(offColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(offColor).
			PaddingLeft(1).
			MarginLeft(2).
			MarginTop(1)

	// Status line styles
	statusStyle = lipgloss.NewStyle().
			Foreground(onColor).
			PaddingLeft(2).
			MarginTop(1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				PaddingLeft(2).
				MarginTop(1)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			MarginTop(1)
)
