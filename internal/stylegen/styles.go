package stylegen

import "github.com/charmbracelet/lipgloss"

// Report styles, named by what they mark rather than by color.
var (
	PathStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	SkipStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	CountStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	HintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle returns text painted with style, or text as is for plain output.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if useColors {
		return style.Render(text)
	}
	return text
}
