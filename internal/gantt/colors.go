package gantt

import "github.com/obedvega/hito/internal/models"

// BarColor maps a task's status and priority onto a display hex
// color. Status picks the hue, priority the shade. Both switches are
// exhaustive over the closed enums; an unrecognized value can only
// mean a new enum member was added without updating this table, and
// gets the neutral fallback.
func BarColor(status models.Status, priority models.Priority) string {
	switch status {
	case models.StatusCompleted:
		// Green, independent of priority
		return "#22C55E"
	case models.StatusBlocked:
		// Red family
		switch priority {
		case models.PriorityHigh:
			return "#DC2626"
		case models.PriorityMedium:
			return "#EF4444"
		case models.PriorityLow:
			return "#F87171"
		}
	case models.StatusInProgress:
		// Blue family
		switch priority {
		case models.PriorityHigh:
			return "#2563EB"
		case models.PriorityMedium:
			return "#3B82F6"
		case models.PriorityLow:
			return "#60A5FA"
		}
	case models.StatusNotStarted:
		// Gray family
		switch priority {
		case models.PriorityHigh:
			return "#6B7280"
		case models.PriorityMedium:
			return "#9CA3AF"
		case models.PriorityLow:
			return "#D1D5DB"
		}
	}
	return "#9CA3AF"
}
