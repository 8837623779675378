package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// exportTasks writes the filtered task list as CSV under the user's
// home directory and returns a status line for the UI.
func (m Model) exportTasks() string {
	out, err := m.svc.Tasks.ExportCSV(context.Background(), m.activeFilters[tabTasks])
	if err != nil {
		return "export failed: " + err.Error()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "export failed: " + err.Error()
	}
	dir := filepath.Join(home, ".hito", "exports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "export failed: " + err.Error()
	}

	path := filepath.Join(dir, fmt.Sprintf("tasks-%s.csv", time.Now().Format("2006-01-02-150405")))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "export failed: " + err.Error()
	}
	return "exported " + path
}
