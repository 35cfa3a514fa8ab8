package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state != StatePlan && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		docStyle.Render(m.schedule.View()),
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	header := titleStyle.Render("littleday " + m.date)
	plan, ok := m.Plan()
	if !ok {
		return header
	}
	done := 0
	for _, item := range plan.Items {
		if item.Completed {
			done++
		}
	}
	summary := fmt.Sprintf(" %d/%d done", done, len(plan.Items))
	if m.dirty {
		summary += " (unsaved)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, header, subtleStyle.Render(summary))
}

func (m Model) viewStatus() string {
	switch {
	case m.err != "":
		return errorStyle.Render(m.err)
	case m.status != "":
		return statusStyle.Render(m.status)
	case m.warnings > 0:
		return errorStyle.Render(fmt.Sprintf("⚠ %d validation warnings, run 'littleday validate' for details", m.warnings))
	}
	return ""
}
