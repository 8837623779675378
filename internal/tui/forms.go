package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/services/milestone"
	"github.com/obedvega/hito/internal/services/person"
	"github.com/obedvega/hito/internal/services/task"
	"github.com/obedvega/hito/internal/types"
)

// formKind identifies which entity a form creates or edits
type formKind int

const (
	formTask formKind = iota
	formMilestone
	formPerson
)

// entityForm is a vertical sequence of text inputs. Enter on the last
// field submits; tab/shift+tab move focus.
type entityForm struct {
	kind   formKind
	title  string
	editID int // 0 means create
	labels []string
	inputs []textinput.Model
	focus  int
}

func buildInputs(labels []string, values []string) []textinput.Model {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		in := textinput.New()
		in.CharLimit = 128
		in.SetValue(values[i])
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return inputs
}

func newPersonForm(edit *models.Person) *entityForm {
	values := []string{"", "", ""}
	title := "New Person"
	editID := 0
	if edit != nil {
		values = []string{edit.Name, edit.Email, edit.Role}
		title = "Edit Person"
		editID = edit.ID.ToInt()
	}
	labels := []string{"Name", "Email", "Role"}
	return &entityForm{
		kind:   formPerson,
		title:  title,
		editID: editID,
		labels: labels,
		inputs: buildInputs(labels, values),
	}
}

func newMilestoneForm(edit *models.Milestone) *entityForm {
	values := []string{"", ""}
	title := "New Milestone"
	editID := 0
	if edit != nil {
		values[0] = edit.Name
		if edit.TargetDate != nil {
			values[1] = edit.TargetDate.Format(models.DateFormat)
		}
		title = "Edit Milestone"
		editID = edit.ID.ToInt()
	}
	labels := []string{"Name", "Target date (YYYY-MM-DD, optional)"}
	return &entityForm{
		kind:   formMilestone,
		title:  title,
		editID: editID,
		labels: labels,
		inputs: buildInputs(labels, values),
	}
}

func newTaskForm(edit *models.Task) *entityForm {
	values := []string{"", "", "Not Started", "Medium", "", "", "", ""}
	title := "New Task"
	editID := 0
	if edit != nil {
		values = []string{
			edit.Title,
			edit.Description,
			edit.Status.String(),
			edit.Priority.String(),
			edit.StartDate.Format(models.DateFormat),
			edit.DueDate.Format(models.DateFormat),
			refToString(edit.AssigneeID),
			refToString(edit.MilestoneID),
		}
		title = "Edit Task"
		editID = edit.ID.ToInt()
	}
	labels := []string{
		"Title",
		"Description",
		"Status (Not Started/In Progress/Completed/Blocked)",
		"Priority (Low/Medium/High)",
		"Start date (YYYY-MM-DD)",
		"Due date (YYYY-MM-DD)",
		"Assignee ID (optional)",
		"Milestone ID (optional)",
	}
	return &entityForm{
		kind:   formTask,
		title:  title,
		editID: editID,
		labels: labels,
		inputs: buildInputs(labels, values),
	}
}

func refToString[T interface{ ToInt() int }](ref *T) string {
	if ref == nil {
		return ""
	}
	return strconv.Itoa((*ref).ToInt())
}

// setFocus moves input focus to index i
func (f *entityForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *entityForm) nextField() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *entityForm) prevField() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *entityForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *entityForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// submitForm parses the form and dispatches to the right service.
// Validation failures come back as errors and are shown in the status
// line without closing the form.
func (m *Model) submitForm() error {
	ctx := context.Background()
	f := m.form

	switch f.kind {
	case formPerson:
		if f.editID == 0 {
			_, err := m.svc.People.CreatePerson(ctx, person.CreatePersonRequest{
				Name:  f.value(0),
				Email: f.value(1),
				Role:  f.value(2),
			})
			return err
		}
		name, email, role := f.value(0), f.value(1), f.value(2)
		_, err := m.svc.People.UpdatePerson(ctx, person.UpdatePersonRequest{
			ID:    types.PersonID(f.editID),
			Name:  &name,
			Email: &email,
			Role:  &role,
		})
		return err

	case formMilestone:
		target, err := parseOptionalDate(f.value(1))
		if err != nil {
			return err
		}
		if f.editID == 0 {
			_, err := m.svc.Milestones.CreateMilestone(ctx, milestone.CreateMilestoneRequest{
				Name:       f.value(0),
				TargetDate: target,
			})
			return err
		}
		name := f.value(0)
		_, err = m.svc.Milestones.UpdateMilestone(ctx, milestone.UpdateMilestoneRequest{
			ID:              types.MilestoneID(f.editID),
			Name:            &name,
			TargetDate:      target,
			ClearTargetDate: target == nil,
		})
		return err

	case formTask:
		return m.submitTaskForm(ctx, f)
	}
	return nil
}

func (m *Model) submitTaskForm(ctx context.Context, f *entityForm) error {
	status, err := models.ParseStatus(f.value(2))
	if err != nil {
		return err
	}
	priority, err := models.ParsePriority(f.value(3))
	if err != nil {
		return err
	}
	start, err := parseFormDate("start date", f.value(4))
	if err != nil {
		return err
	}
	due, err := parseFormDate("due date", f.value(5))
	if err != nil {
		return err
	}
	assignee, err := parseOptionalRef[types.PersonID]("assignee ID", f.value(6))
	if err != nil {
		return err
	}
	milestoneRef, err := parseOptionalRef[types.MilestoneID]("milestone ID", f.value(7))
	if err != nil {
		return err
	}

	if f.editID == 0 {
		_, err := m.svc.Tasks.CreateTask(ctx, task.CreateTaskRequest{
			Title:       f.value(0),
			Description: f.value(1),
			Status:      status,
			Priority:    priority,
			StartDate:   start,
			DueDate:     due,
			AssigneeID:  assignee,
			MilestoneID: milestoneRef,
		})
		return err
	}

	title, description := f.value(0), f.value(1)
	_, err = m.svc.Tasks.UpdateTask(ctx, task.UpdateTaskRequest{
		ID:             types.TaskID(f.editID),
		Title:          &title,
		Description:    &description,
		Status:         &status,
		Priority:       &priority,
		StartDate:      &start,
		DueDate:        &due,
		AssigneeID:     assignee,
		ClearAssignee:  assignee == nil,
		MilestoneID:    milestoneRef,
		ClearMilestone: milestoneRef == nil,
	})
	return err
}

func parseFormDate(field, value string) (time.Time, error) {
	t, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: field, Reason: "use YYYY-MM-DD"}
	}
	return t, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseFormDate("target date", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseOptionalRef[T ~int](field, value string) (*T, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return nil, &models.ValidationError{Field: field, Reason: "must be a positive number"}
	}
	ref := T(n)
	return &ref, nil
}
