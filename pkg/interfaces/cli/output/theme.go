package output

import "github.com/charmbracelet/lipgloss"

// theme decorates parts of the text report. The plain theme leaves text unchanged.
type theme struct {
	title   func(string) string
	heading func(string) string
	warning func(string) string
	total   func(string) string
}

func plainTheme() theme {
	identity := func(s string) string { return s }
	return theme{title: identity, heading: identity, warning: identity, total: identity}
}

// newTheme returns terminal colors when color is set, the plain theme otherwise
func newTheme(color bool) theme {
	if !color {
		return plainTheme()
	}

	return theme{
		title:   render(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))),
		heading: render(lipgloss.NewStyle().Bold(true)),
		warning: render(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
		total:   render(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))),
	}
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string {
		return style.Render(s)
	}
}
