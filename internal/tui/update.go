package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "l", "right":
		m.tab = (m.tab + 1) % tab(len(tabNames))
		m.cursor = 0
		m.status = ""
		return m, nil

	case "shift+tab", "h", "left":
		m.tab = (m.tab - 1 + tab(len(tabNames))) % tab(len(tabNames))
		m.cursor = 0
		m.status = ""
		return m, nil

	case "j", "down":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "/":
		m.mode = modeFilter
		m.filterInput.SetValue(m.activeFilters[m.tab])
		m.filterInput.Focus()
		return m, nil

	case "a":
		return m.openCreateForm()

	case "enter":
		return m.openEditForm()

	case "d":
		return m.openDeleteConfirm()

	case "e":
		m.status = m.exportTasks()
		return m, nil

	case "r":
		m.refresh()
		m.status = ""
		return m, nil
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.filterInput.Blur()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.filterInput.Blur()
		m.activeFilters[m.tab] = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	// Filter as the user types, like the original filter boxes
	m.activeFilters[m.tab] = m.filterInput.Value()
	m.refresh()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeNormal
		m.status = ""
		return m, nil

	case "tab", "down":
		m.form.nextField()
		return m, nil

	case "shift+tab", "up":
		m.form.prevField()
		return m, nil

	case "enter":
		if m.form.focus < len(m.form.inputs)-1 {
			m.form.nextField()
			return m, nil
		}
		if err := m.submitForm(); err != nil {
			// Leave the form open so the input can be corrected
			m.status = "error: " + err.Error()
			return m, nil
		}
		m.form = nil
		m.mode = modeNormal
		m.status = ""
		m.refresh()
		return m, nil
	}

	cmd := m.form.updateFocused(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.confirm.action(); err != nil {
			m.status = "error: " + err.Error()
		} else {
			m.status = ""
		}
		m.mode = modeNormal
		m.confirm = confirmState{}
		m.refresh()
		return m, nil

	case "n", "N", "esc":
		m.mode = modeNormal
		m.confirm = confirmState{}
		return m, nil
	}
	return m, nil
}

func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabTasks:
		m.form = newTaskForm(nil)
	case tabMilestones:
		m.form = newMilestoneForm(nil)
	case tabPeople:
		m.form = newPersonForm(nil)
	default:
		return m, nil
	}
	m.mode = modeForm
	m.status = ""
	return m, nil
}

func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	if m.listLen() == 0 {
		return m, nil
	}
	switch m.tab {
	case tabTasks:
		m.form = newTaskForm(m.tasks[m.cursor])
	case tabMilestones:
		m.form = newMilestoneForm(m.milestones[m.cursor])
	case tabPeople:
		m.form = newPersonForm(m.people[m.cursor])
	default:
		return m, nil
	}
	m.mode = modeForm
	m.status = ""
	return m, nil
}

func (m Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	if m.listLen() == 0 {
		return m, nil
	}

	svc := m.svc
	switch m.tab {
	case tabTasks:
		t := m.tasks[m.cursor]
		m.confirm = confirmState{
			prompt: "Delete task \"" + t.Title + "\"?",
			action: func() error { return svc.Tasks.DeleteTask(context.Background(), t.ID) },
		}
	case tabMilestones:
		ms := m.milestones[m.cursor]
		m.confirm = confirmState{
			prompt: "Delete milestone \"" + ms.Name + "\"? Tasks keep their dates but lose the reference.",
			action: func() error { return svc.Milestones.DeleteMilestone(context.Background(), ms.ID) },
		}
	case tabPeople:
		p := m.people[m.cursor]
		m.confirm = confirmState{
			prompt: "Delete person \"" + p.Name + "\"? Their tasks become unassigned.",
			action: func() error { return svc.People.DeletePerson(context.Background(), p.ID) },
		}
	default:
		return m, nil
	}
	m.mode = modeConfirm
	return m, nil
}
