package render

import "github.com/charmbracelet/lipgloss"

// Theme is the palette of the terminal views. Colors are ANSI 256-color
// codes.
type Theme struct {
	Text   lipgloss.Color
	Faint  lipgloss.Color
	Header lipgloss.Color
	Idle   lipgloss.Color

	// Mixed colors a slot where more than one job fires.
	Mixed lipgloss.Color

	// Jobs is cycled by job index.
	Jobs []lipgloss.Color
}

// JobColor returns the color of job i.
func (t Theme) JobColor(i int) lipgloss.Color {
	if i < 0 || len(t.Jobs) == 0 {
		return t.Text
	}
	return t.Jobs[i%len(t.Jobs)]
}

// DefaultTheme suits a dark terminal background.
var DefaultTheme = Theme{
	Text:   lipgloss.Color("252"),
	Faint:  lipgloss.Color("245"),
	Header: lipgloss.Color("255"),
	Idle:   lipgloss.Color("238"),
	Mixed:  lipgloss.Color("220"),
	Jobs: []lipgloss.Color{
		lipgloss.Color("75"),  // blue
		lipgloss.Color("114"), // green
		lipgloss.Color("208"), // orange
		lipgloss.Color("141"), // purple
		lipgloss.Color("203"), // red
		lipgloss.Color("80"),  // teal
	},
}
