package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaspreet-dot-casa/parentpaths/pkg/parentpaths"
)

var (
	levelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// renderTrace prints probes grouped by directory level.
func renderTrace(w io.Writer, probes []parentpaths.Probe) {
	level := -1
	for _, p := range probes {
		if p.Level != level {
			level = p.Level
			fmt.Fprintln(w, levelStyle.Render(fmt.Sprintf("[%d] %s", p.Level, p.Dir)))
		}
		if p.Exists {
			fmt.Fprintln(w, "  "+foundStyle.Render("+ "+p.Fragment))
		} else {
			fmt.Fprintln(w, "  "+missingStyle.Render("- "+p.Fragment))
		}
	}
}
