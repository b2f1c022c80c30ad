// Package styles provides a centralized theme for the gemchat UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	// Primary accent color (purple)
	ColorAccent = lipgloss.Color("141")

	// Text colors
	ColorText      = lipgloss.Color("252") // Primary text
	ColorTextMuted = lipgloss.Color("245") // Secondary/muted text

	// Semantic colors
	ColorUser      = lipgloss.Color("42")  // User message prefix
	ColorAssistant = lipgloss.Color("141") // Assistant message prefix

	// Border colors
	ColorBorder = lipgloss.Color("141")
)

var (
	// TitleStyle for the screen title
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// TextStyle for message bodies
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// UserLabelStyle for the "You:" prefix
	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	// AssistantLabelStyle for the "Assistant:" prefix
	AssistantLabelStyle = lipgloss.NewStyle().
				Foreground(ColorAssistant).
				Bold(true)

	// PendingStyle for the transient "thinking" placeholder
	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	// FooterStyle for footer/help text
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)
