package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)
