// Package export serializes task collections to tabular text.
// It only builds the in-memory buffer; writing it anywhere is the
// caller's job.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/types"
)

// Placeholder stands in for an unset or unresolvable reference.
const Placeholder = "-"

// Header is the fixed first row of every export.
var Header = []string{"Title", "Status", "Priority", "Start Date", "Due Date", "Assignee", "Milestone"}

// Tasks renders tasks as CSV, one row per task after the header.
// peopleNames and milestoneNames resolve the reference columns;
// missing entries fall back to the placeholder rather than failing
// the export.
func Tasks(tasks []*models.Task, peopleNames map[types.PersonID]string, milestoneNames map[types.MilestoneID]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range tasks {
		assignee := Placeholder
		if t.AssigneeID != nil {
			if name, ok := peopleNames[*t.AssigneeID]; ok {
				assignee = name
			}
		}
		milestone := Placeholder
		if t.MilestoneID != nil {
			if name, ok := milestoneNames[*t.MilestoneID]; ok {
				milestone = name
			}
		}

		record := []string{
			t.Title,
			t.Status.String(),
			t.Priority.String(),
			t.StartDate.Format(models.DateFormat),
			t.DueDate.Format(models.DateFormat),
			assignee,
			milestone,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write task %d: %w", t.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	return buf.String(), nil
}
