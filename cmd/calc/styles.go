package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calc"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorHeader  = lipgloss.Color("#7C3AED")
	colorShift   = lipgloss.Color("#10B981")
	colorReduce  = lipgloss.Color("#F59E0B")
	colorMatched = lipgloss.Color("#3B82F6")

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	echoStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center)

	headerStyle = cellStyle.
			Foreground(colorHeader).
			Bold(true)

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted)
)

func relationStyle(r calc.Relation) lipgloss.Style {
	switch r {
	case calc.Lower:
		return cellStyle.Foreground(colorShift)
	case calc.Higher:
		return cellStyle.Foreground(colorReduce)
	case calc.Equal:
		return cellStyle.Foreground(colorMatched)
	default:
		return cellStyle
	}
}
