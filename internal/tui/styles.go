package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, as in the rest of the jask apps.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	statusStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	footerStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 2)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	codeStyle     = lipgloss.NewStyle().Foreground(colorPeach)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)
	enabledStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	disabledStyle = lipgloss.NewStyle().Foreground(colorSurface1)
	listBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
)
