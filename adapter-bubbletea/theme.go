package adapter_bubbletea

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	NavigationModeStyle    lipgloss.Style
	InsertModeStyle        lipgloss.Style
	StatusLineStyle        lipgloss.Style
	MessageLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	TextStyle              lipgloss.Style
	DimmedStyle            lipgloss.Style
	CursorStyle            lipgloss.Style
	TildeStyle             lipgloss.Style
}

var DefaultTheme = Theme{
	NavigationModeStyle:    lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4).Align(lipgloss.Right),
	TextStyle:              lipgloss.NewStyle(),
	DimmedStyle:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
	CursorStyle:            lipgloss.NewStyle().Reverse(true),
	TildeStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}
