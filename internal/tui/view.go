package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/obedvega/hito/internal/models"
)

const minBarCells = 1

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	var content string
	switch m.tab {
	case tabTasks:
		content = m.renderTasks()
	case tabMilestones:
		content = m.renderMilestones()
	case tabPeople:
		content = m.renderPeople()
	case tabGantt:
		content = m.renderGantt()
	}
	b.WriteString(m.styles.Content.Width(m.contentWidth()).Render(content))
	b.WriteString("\n")

	switch m.mode {
	case modeFilter:
		b.WriteString("filter: " + m.filterInput.View())
		b.WriteString("\n")
	case modeForm:
		b.WriteString(m.renderForm())
		b.WriteString("\n")
	case modeConfirm:
		b.WriteString(m.styles.Dialog.Render(m.confirm.prompt + " (y/n)"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			rendered[i] = m.styles.ActiveTab.Render(name)
		} else {
			rendered[i] = m.styles.Tab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTasks() string {
	if len(m.tasks) == 0 {
		return m.emptyMessage("tasks")
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Tasks"))
	b.WriteString("\n")
	for i, t := range m.tasks {
		line := fmt.Sprintf("[%d] %-24s %-11s %-6s %s → %s%s",
			t.ID.ToInt(),
			truncate(t.Title, 24),
			t.Status.String(),
			t.Priority.String(),
			t.StartDate.Format(models.DateFormat),
			t.DueDate.Format(models.DateFormat),
			m.taskRefs(t),
		)
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

// taskRefs renders the resolved assignee and milestone names, if set.
func (m Model) taskRefs(t *models.Task) string {
	var parts []string
	if t.AssigneeID != nil {
		name, ok := m.peopleNames[*t.AssigneeID]
		if !ok {
			name = fmt.Sprintf("#%d", t.AssigneeID.ToInt())
		}
		parts = append(parts, "@"+name)
	}
	if t.MilestoneID != nil {
		name, ok := m.milestoneNames[*t.MilestoneID]
		if !ok {
			name = fmt.Sprintf("#%d", t.MilestoneID.ToInt())
		}
		parts = append(parts, "◆"+name)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

func (m Model) renderMilestones() string {
	if len(m.milestones) == 0 {
		return m.emptyMessage("milestones")
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Milestones"))
	b.WriteString("\n")
	for i, ms := range m.milestones {
		target := "no target date"
		if ms.TargetDate != nil {
			target = ms.TargetDate.Format(models.DateFormat)
		}
		line := fmt.Sprintf("[%d] %-28s %s", ms.ID.ToInt(), truncate(ms.Name, 28), target)
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m Model) renderPeople() string {
	if len(m.people) == 0 {
		return m.emptyMessage("people")
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("People"))
	b.WriteString("\n")
	for i, p := range m.people {
		line := fmt.Sprintf("[%d] %-20s %-28s %s",
			p.ID.ToInt(), truncate(p.Name, 20), truncate(p.Email, 28), p.Role)
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

// renderGantt draws one bar per row, scaled to the content width.
func (m Model) renderGantt() string {
	if len(m.rows) == 0 {
		return m.emptyMessage("timeline bars")
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Timeline"))
	b.WriteString("\n")

	labelWidth := 20
	barWidth := m.contentWidth() - labelWidth - 3
	if barWidth < 10 {
		barWidth = 10
	}

	for i, row := range m.rows {
		label := fmt.Sprintf("#%d", row.TaskID.ToInt())
		if t := m.taskByID(row.TaskID.ToInt()); t != nil {
			label = truncate(t.Title, labelWidth)
		}

		lead := int(row.Offset * float64(barWidth))
		cells := int(row.Width * float64(barWidth))
		if cells < minBarCells {
			cells = minBarCells
		}
		if lead+cells > barWidth {
			lead = barWidth - cells
		}
		if lead < 0 {
			lead = 0
		}

		bar := strings.Repeat(" ", lead) +
			lipgloss.NewStyle().
				Foreground(lipgloss.Color(row.Color)).
				Render(strings.Repeat("█", cells))
		b.WriteString(m.renderRow(i, fmt.Sprintf("%-*s %s", labelWidth, label, bar)))
	}
	return b.String()
}

func (m Model) renderRow(i int, line string) string {
	if i == m.cursor && m.mode == modeNormal {
		return m.styles.Selected.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m Model) emptyMessage(what string) string {
	if m.activeFilters[m.tab] != "" {
		return fmt.Sprintf("no %s match %q", what, m.activeFilters[m.tab])
	}
	return fmt.Sprintf("no %s yet - press 'a' to add one", what)
}

func (m Model) renderForm() string {
	f := m.form
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(f.title))
	b.WriteString("\n\n")
	for i, label := range f.labels {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker + label + "\n")
		b.WriteString("  " + f.inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter: next/submit  tab: next field  esc: cancel"))
	return m.styles.Dialog.Render(b.String())
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeFilter:
		return "enter: apply  esc: clear"
	case modeForm, modeConfirm:
		return ""
	}
	base := "tab: switch  j/k: move  /: filter  a: add  enter: edit  d: delete  r: reload  q: quit"
	if m.tab == tabTasks {
		base += "  e: export csv"
	}
	return base
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
