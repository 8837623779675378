// Package tui is the terminal front end. It talks only to the
// services; all invariants live below it, so this layer is view glue.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/obedvega/hito/internal/config"
	"github.com/obedvega/hito/internal/gantt"
	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/services/milestone"
	"github.com/obedvega/hito/internal/services/person"
	"github.com/obedvega/hito/internal/services/task"
	"github.com/obedvega/hito/internal/types"
)

// Services bundles the application services the TUI depends on.
type Services struct {
	Tasks      task.Service
	Milestones milestone.Service
	People     person.Service
}

// tab identifies the active view
type tab int

const (
	tabTasks tab = iota
	tabMilestones
	tabPeople
	tabGantt
)

var tabNames = []string{"Tasks", "Milestones", "People", "Gantt"}

// mode identifies the input state
type mode int

const (
	modeNormal mode = iota
	modeFilter
	modeForm
	modeConfirm
)

// Model represents the application state for the TUI
type Model struct {
	svc    Services
	cfg    *config.Config
	styles styles

	tab    tab
	mode   mode
	cursor int
	width  int
	height int

	// One filter per tab, applied through the query engine
	filterInput   textinput.Model
	activeFilters [4]string

	tasks      []*models.Task
	milestones []*models.Milestone
	people     []*models.Person
	rows       []gantt.Row

	// Unfiltered name indexes for resolving references in list rows
	peopleNames    map[types.PersonID]string
	milestoneNames map[types.MilestoneID]string

	form    *entityForm
	confirm confirmState
	status  string
}

// confirmState tracks a pending y/n deletion prompt
type confirmState struct {
	prompt string
	action func() error
}

// InitialModel creates and initializes the TUI model with data
// loaded through the services.
func InitialModel(svc Services, cfg *config.Config) Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.CharLimit = 64

	m := Model{
		svc:         svc,
		cfg:         cfg,
		styles:      newStyles(cfg.Theme),
		filterInput: filter,
	}
	m.refresh()
	return m
}

// refresh reloads every view from the services, applying the active
// filter for each tab.
func (m *Model) refresh() {
	ctx := context.Background()

	tasks, err := m.svc.Tasks.SearchTasks(ctx, m.activeFilters[tabTasks])
	if err != nil {
		slog.Error("loading tasks", "error", err)
		m.status = "error: " + err.Error()
	}
	m.tasks = tasks

	milestones, err := m.svc.Milestones.SearchMilestones(ctx, m.activeFilters[tabMilestones])
	if err != nil {
		slog.Error("loading milestones", "error", err)
		m.status = "error: " + err.Error()
	}
	m.milestones = milestones

	people, err := m.svc.People.SearchPeople(ctx, m.activeFilters[tabPeople])
	if err != nil {
		slog.Error("loading people", "error", err)
		m.status = "error: " + err.Error()
	}
	m.people = people

	rows, err := m.svc.Tasks.Timeline(ctx, m.activeFilters[tabGantt], m.cfg.Gantt.PaddingDays)
	if err != nil {
		slog.Error("loading timeline", "error", err)
		m.status = "error: " + err.Error()
	}
	m.rows = rows

	m.rebuildNameIndexes(ctx)
	m.clampCursor()
}

// rebuildNameIndexes refreshes the unfiltered lookup maps used to
// render assignee and milestone names on task rows.
func (m *Model) rebuildNameIndexes(ctx context.Context) {
	m.peopleNames = make(map[types.PersonID]string)
	if all, err := m.svc.People.ListPeople(ctx); err == nil {
		for _, p := range all {
			m.peopleNames[p.ID] = p.Name
		}
	}
	m.milestoneNames = make(map[types.MilestoneID]string)
	if all, err := m.svc.Milestones.ListMilestones(ctx); err == nil {
		for _, ms := range all {
			m.milestoneNames[ms.ID] = ms.Name
		}
	}
}

// listLen returns the number of selectable entries on the active tab.
func (m Model) listLen() int {
	switch m.tab {
	case tabTasks:
		return len(m.tasks)
	case tabMilestones:
		return len(m.milestones)
	case tabPeople:
		return len(m.people)
	case tabGantt:
		return len(m.rows)
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.listLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// taskByID resolves a task from the loaded slice.
func (m Model) taskByID(id int) *models.Task {
	for _, t := range m.tasks {
		if t.ID.ToInt() == id {
			return t
		}
	}
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}
