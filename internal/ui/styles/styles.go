// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across prompts, tables, reports and log output.
// Call [Init] after loading config to apply the configured theme.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI. Updated by Init.
var (
	// Primary is the main accent color (prompts, borders)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color for menu numbers and input
	Accent color.Color = DefaultTheme.Accent

	// Success is used for the creation report
	Success color.Color = DefaultTheme.Success

	// Error is used for error messages
	Error color.Color = DefaultTheme.Error

	// Muted is used for hints and debug output
	Muted color.Color = DefaultTheme.Muted

	// Normal is the standard text color
	Normal color.Color = DefaultTheme.Normal

	// Info is used for informational text
	Info color.Color = DefaultTheme.Info

	// Warning is used for warnings and the format menu
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color with bold
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// SuccessStyle applies the success color with bold
	SuccessStyle = lipgloss.NewStyle().Foreground(Success).Bold(true)

	// ErrorStyle applies the error color with bold
	ErrorStyle = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// InfoStyle applies the info color with italic
	InfoStyle = lipgloss.NewStyle().Foreground(Info).Italic(true)

	// WarningStyle applies the warning color with bold
	WarningStyle = lipgloss.NewStyle().Foreground(Warning).Bold(true)
)
