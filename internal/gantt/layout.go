// Package gantt turns a task collection into deterministic,
// collision-free timeline geometry. It knows nothing about rendering;
// the rows it emits are plain records a caller can draw however it
// likes.
package gantt

import (
	"sort"
	"time"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/types"
)

// MinWidth is the floor applied to zero-length spans so a task whose
// start equals its due date still renders a visible mark.
const MinWidth = 0.01

// Range is the date window the layout maps onto [0, 1].
type Range struct {
	Min time.Time
	Max time.Time
}

// Row is one timeline bar: a task's identifier, its assigned row
// index, and its normalized horizontal geometry.
type Row struct {
	TaskID types.TaskID
	Index  int
	Offset float64
	Width  float64
	Color  string
}

// DefaultRange derives the display window from the min start and max
// due date of tasks, padded by padDays on both sides. An empty input
// falls back to a one-day window starting today.
func DefaultRange(tasks []*models.Task, padDays int) Range {
	if len(tasks) == 0 {
		today := time.Now().Truncate(24 * time.Hour)
		return Range{Min: today, Max: today.AddDate(0, 0, 1)}
	}

	min, max := tasks[0].StartDate, tasks[0].DueDate
	for _, t := range tasks[1:] {
		if t.StartDate.Before(min) {
			min = t.StartDate
		}
		if t.DueDate.After(max) {
			max = t.DueDate
		}
	}
	min = min.AddDate(0, 0, -padDays)
	max = max.AddDate(0, 0, padDays)
	if !max.After(min) {
		max = min.AddDate(0, 0, 1)
	}
	return Range{Min: min, Max: max}
}

// Layout maps tasks onto r, producing one row per visible task.
// Tasks lying entirely outside r are skipped. Rows are ordered by
// ascending start date, ties broken by ascending identifier, and row
// indexes are assigned in that order, so output is reproducible for
// any input ordering.
func Layout(tasks []*models.Task, r Range) []Row {
	if !r.Max.After(r.Min) {
		r.Max = r.Min.AddDate(0, 0, 1)
	}

	visible := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate.Before(r.Min) || t.StartDate.After(r.Max) {
			continue
		}
		visible = append(visible, t)
	}

	sort.Slice(visible, func(i, j int) bool {
		if !visible[i].StartDate.Equal(visible[j].StartDate) {
			return visible[i].StartDate.Before(visible[j].StartDate)
		}
		return visible[i].ID < visible[j].ID
	})

	span := r.Max.Sub(r.Min)
	rows := make([]Row, 0, len(visible))
	for i, t := range visible {
		offset := float64(t.StartDate.Sub(r.Min)) / float64(span)
		end := float64(t.DueDate.Sub(r.Min)) / float64(span)
		if offset < 0 {
			offset = 0
		}
		if end > 1 {
			end = 1
		}

		width := end - offset
		if width < MinWidth {
			width = MinWidth
		}
		// Keep the bar inside the window when the floor pushes it past
		// the right edge.
		if offset+width > 1 {
			offset = 1 - width
		}

		rows = append(rows, Row{
			TaskID: t.ID,
			Index:  i,
			Offset: offset,
			Width:  width,
			Color:  BarColor(t.Status, t.Priority),
		})
	}
	return rows
}
