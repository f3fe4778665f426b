package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/knightly/knightly/internal/mission"
)

// missionListLines renders one line per mission, grouped by category, and
// returns the line index of the active mission.
func missionListLines(missions []mission.Mission, active int) ([]string, int) {
	var lines []string
	cursorLine := 0
	lastCategory := ""
	for i, m := range missions {
		if m.Category != lastCategory {
			if lastCategory != "" {
				lines = append(lines, "")
			}
			lines = append(lines, mutedStyle.Bold(true).Render(fmt.Sprintf("── %s ──", m.Category)))
			lastCategory = m.Category
		}

		prefix := "  "
		style := unselectedStyle
		if i == active {
			prefix = "> "
			style = selectedStyle
			cursorLine = len(lines)
		}

		p := m.Value()
		mark := "  "
		if p.Complete() {
			mark = doneStyle.Render("✓ ")
		}
		lines = append(lines, fmt.Sprintf("%s%s%s  %s",
			prefix, mark, style.Render(m.Title),
			mutedStyle.Render(fmt.Sprintf("%s (%.0f%%)", p, p.Percentage())),
		))
	}
	return lines, cursorLine
}

func renderWindow(lines []string, cursorLine, height, width int) string {
	var b strings.Builder
	for i, line := range windowLines(lines, cursorLine, height) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fitWidth(line, width))
	}
	return b.String()
}

func windowLines(lines []string, cursor, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(lines) {
		cursor = len(lines) - 1
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
