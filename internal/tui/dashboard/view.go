package dashboard

import (
	"fmt"
	"strings"
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("switchctl"))
	b.WriteString("\n")

	for i, sw := range m.switches {
		glyph := stateOffStyle.Render("○ off")
		if sw.IsOn() {
			glyph = stateOnStyle.Render("● on")
		}

		row := fmt.Sprintf("%-20s %s", sw.Name(), glyph)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(row))
		} else {
			b.WriteString(itemStyle.Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderHistory())

	if m.status != "" {
		style := statusStyle
		if m.isErr {
			style = statusErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHistory() string {
	sw := m.selected()
	if sw == nil {
		return ""
	}

	entries, err := m.controller.History(sw.ID())
	if err != nil || len(entries) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("history for %s (oldest first)", sw.Name()))
	for _, name := range entries {
		lines = append(lines, "  "+name)
	}

	return historyStyle.Render(strings.Join(lines, "\n")) + "\n"
}
