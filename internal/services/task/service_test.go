package task

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/obedvega/hito/internal/database"
	"github.com/obedvega/hito/internal/events"
	"github.com/obedvega/hito/internal/models"
)

// setupService builds a task service over a fresh file-backed store.
func setupService(t *testing.T) (Service, *database.Repository, *events.Recorder) {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := database.NewRepository(db)
	recorder := &events.Recorder{}
	return NewService(repo, recorder), repo, recorder
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func createTask(t *testing.T, svc Service, title, start, due string) *models.Task {
	t.Helper()
	created, err := svc.CreateTask(context.Background(), CreateTaskRequest{
		Title:     title,
		Status:    models.StatusNotStarted,
		Priority:  models.PriorityMedium,
		StartDate: mustDate(t, start),
		DueDate:   mustDate(t, due),
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	return created
}

func TestCreateTaskPublishesEvent(t *testing.T) {
	svc, _, recorder := setupService(t)

	created := createTask(t, svc, "Write docs", "2025-01-01", "2025-01-10")
	if len(recorder.Entries) != 1 || !strings.Contains(recorder.Entries[0], "created task") {
		t.Errorf("expected a created event, got %v", recorder.Entries)
	}
	if created.ID == 0 {
		t.Error("expected assigned ID")
	}
}

func TestCreateTaskValidationReported(t *testing.T) {
	svc, _, recorder := setupService(t)

	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{
		Title:     "",
		Status:    models.StatusNotStarted,
		Priority:  models.PriorityLow,
		StartDate: mustDate(t, "2025-01-01"),
		DueDate:   mustDate(t, "2025-01-02"),
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(recorder.Entries) != 1 || !strings.Contains(recorder.Entries[0], "rejected task title") {
		t.Errorf("expected a rejection event, got %v", recorder.Entries)
	}
}

func TestUpdateTaskPartialMerge(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created := createTask(t, svc, "Original", "2025-01-01", "2025-01-10")

	newTitle := "Renamed"
	newStatus := models.StatusInProgress
	updated, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		ID:     created.ID,
		Title:  &newTitle,
		Status: &newStatus,
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if updated.Title != "Renamed" || updated.Status != models.StatusInProgress {
		t.Errorf("requested fields not applied: %+v", updated)
	}
	// Untouched fields keep their stored values
	if updated.Priority != created.Priority || !updated.StartDate.Equal(created.StartDate) {
		t.Errorf("unset fields were changed: %+v", updated)
	}
}

func TestUpdateTaskAssignAndClear(t *testing.T) {
	svc, repo, _ := setupService(t)
	ctx := context.Background()

	p, err := repo.CreatePerson(ctx, models.Person{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("seed person: %v", err)
	}
	created := createTask(t, svc, "Assignable", "2025-01-01", "2025-01-10")

	assigned, err := svc.UpdateTask(ctx, UpdateTaskRequest{ID: created.ID, AssigneeID: &p.ID})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if assigned.AssigneeID == nil || *assigned.AssigneeID != p.ID {
		t.Fatalf("expected assignee %d, got %v", p.ID, assigned.AssigneeID)
	}

	cleared, err := svc.UpdateTask(ctx, UpdateTaskRequest{ID: created.ID, ClearAssignee: true})
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if cleared.AssigneeID != nil {
		t.Errorf("expected cleared assignee, got %v", cleared.AssigneeID)
	}
}

func TestDeleteTaskPublishesEvent(t *testing.T) {
	svc, _, recorder := setupService(t)
	ctx := context.Background()

	created := createTask(t, svc, "Doomed", "2025-01-01", "2025-01-02")
	if err := svc.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	last := recorder.Entries[len(recorder.Entries)-1]
	if !strings.Contains(last, "deleted task") {
		t.Errorf("expected deleted event, got %q", last)
	}

	if err := svc.DeleteTask(ctx, 0); err != ErrInvalidTaskID {
		t.Errorf("expected ErrInvalidTaskID, got %v", err)
	}
}

func TestSearchTasks(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	createTask(t, svc, "Deploy backend", "2025-01-01", "2025-01-02")
	createTask(t, svc, "Deploy frontend", "2025-01-03", "2025-01-04")
	createTask(t, svc, "Write tests", "2025-01-05", "2025-01-06")

	matches, err := svc.SearchTasks(ctx, "deploy")
	if err != nil {
		t.Fatalf("SearchTasks failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	all, err := svc.SearchTasks(ctx, "")
	if err != nil {
		t.Fatalf("SearchTasks failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("empty needle should return everything, got %d", len(all))
	}
}

func TestTimeline(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	createTask(t, svc, "First", "2025-01-05", "2025-01-10")
	createTask(t, svc, "Second", "2025-01-01", "2025-01-03")

	rows, err := svc.Timeline(ctx, "", 0)
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Rows come back sorted by start date, not creation order
	if rows[0].Index != 0 || rows[1].Index != 1 {
		t.Errorf("row indexes wrong: %+v", rows)
	}
	for _, row := range rows {
		if row.Offset+row.Width > 1.0+1e-9 {
			t.Errorf("row exceeds range: %+v", row)
		}
	}
}

func TestTimelineEmptyStore(t *testing.T) {
	svc, _, _ := setupService(t)

	rows, err := svc.Timeline(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty timeline, got %d rows", len(rows))
	}
}

func TestExportCSVResolvesNames(t *testing.T) {
	svc, repo, _ := setupService(t)
	ctx := context.Background()

	p, err := repo.CreatePerson(ctx, models.Person{Name: "Ana Flores", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("seed person: %v", err)
	}
	m, err := repo.CreateMilestone(ctx, models.Milestone{Name: "Release 1.0"})
	if err != nil {
		t.Fatalf("seed milestone: %v", err)
	}

	created := createTask(t, svc, "Ship it", "2025-01-01", "2025-01-10")
	if _, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		ID: created.ID, AssigneeID: &p.ID, MilestoneID: &m.ID,
	}); err != nil {
		t.Fatalf("attach references: %v", err)
	}

	out, err := svc.ExportCSV(ctx, "")
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if !strings.Contains(out, "Ana Flores") || !strings.Contains(out, "Release 1.0") {
		t.Errorf("references not resolved:\n%s", out)
	}
	if !strings.HasPrefix(out, "Title,Status,Priority,Start Date,Due Date,Assignee,Milestone") {
		t.Errorf("missing header:\n%s", out)
	}
}
