package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Centralized style definitions for the TUI.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(1)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow

	containedButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Margin(0, 1).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				Background(lipgloss.Color("5")).
				Foreground(lipgloss.Color("15"))
	outlinedButtonStyle = lipgloss.NewStyle().
				Margin(0, 1).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				Foreground(lipgloss.Color("5"))

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray/dim
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
)

// hexColor formats a theme color for lipgloss.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
