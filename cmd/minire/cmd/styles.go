package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10)

	matchStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	noMatchStyle = lipgloss.NewStyle().
			Foreground(colorError)

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)
