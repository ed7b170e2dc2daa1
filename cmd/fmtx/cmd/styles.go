package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorBorder  = lipgloss.Color("#374151") // Dark Gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(colorBorder)
)

// printResult writes "input -> output" for one converted value
func printResult(w io.Writer, input, output string) {
	fmt.Fprintf(w, "%s %s %s\n", mutedStyle.Render(input), mutedStyle.Render("->"), valueStyle.Render(output))
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render(title))
}
