package cmd

import "github.com/charmbracelet/lipgloss"

var (
	TypeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	LiteralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	FatalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D70000")).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// paint renders s with style when color output is on.
func paint(on bool, style lipgloss.Style, s string) string {
	if !on {
		return s
	}
	return style.Render(s)
}
