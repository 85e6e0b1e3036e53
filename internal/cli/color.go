package cli

import "github.com/charmbracelet/lipgloss"

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0078D4"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E81123"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB900"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B7C3"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Label(text string) string   { return labelStyle.Render(text) }

// Text is plain, unstyled output. It exists so every printed fragment goes
// through a helper and can be restyled in one place.
func Text(text string) string { return text }
