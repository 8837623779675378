package database

import (
	"context"
	"testing"

	"github.com/obedvega/hito/internal/models"
)

func TestCreateMilestoneRoundTrip(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	target := mustDate(t, "2025-06-30")
	created, err := repo.CreateMilestone(ctx, models.Milestone{
		Name:       "Beta release",
		TargetDate: &target,
	})
	if err != nil {
		t.Fatalf("CreateMilestone failed: %v", err)
	}

	got, err := repo.GetMilestoneByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetMilestoneByID failed: %v", err)
	}
	if got.Name != created.Name || got.ID != created.ID {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, created)
	}
	if got.TargetDate == nil || !got.TargetDate.Equal(target) {
		t.Errorf("target date mismatch: got %v, want %v", got.TargetDate, target)
	}
}

func TestCreateMilestoneWithoutTargetDate(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	m := seedMilestone(t, repo, "Someday")
	got, err := repo.GetMilestoneByID(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("GetMilestoneByID failed: %v", err)
	}
	if got.TargetDate != nil {
		t.Errorf("expected nil target date, got %v", got.TargetDate)
	}
}

func TestCreateMilestoneRejectsBlankName(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.CreateMilestone(context.Background(), models.Milestone{Name: "  "})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateMilestone(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	m := seedMilestone(t, repo, "Draft")
	m.Name = "Release 1.0"
	target := mustDate(t, "2025-09-01")
	m.TargetDate = &target

	if _, err := repo.UpdateMilestone(ctx, *m); err != nil {
		t.Fatalf("UpdateMilestone failed: %v", err)
	}

	got, err := repo.GetMilestoneByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMilestoneByID failed: %v", err)
	}
	if got.Name != "Release 1.0" || got.TargetDate == nil {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestDeleteMilestoneClearsTaskReferences(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	m := seedMilestone(t, repo, "Release 1.0")
	task := seedTask(t, repo, "Ship it", "2025-01-01", "2025-01-10")
	task.MilestoneID = &m.ID
	if _, err := repo.UpdateTask(ctx, *task); err != nil {
		t.Fatalf("attaching milestone: %v", err)
	}

	if err := repo.DeleteMilestone(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMilestone failed: %v", err)
	}

	got, err := repo.GetTaskByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("task should survive milestone deletion: %v", err)
	}
	if got.MilestoneID != nil {
		t.Errorf("expected milestone reference to be cleared, got %v", *got.MilestoneID)
	}
}

func TestDeleteMilestoneNotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	err := repo.DeleteMilestone(context.Background(), 7)
	if !models.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetTasksByMilestone(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	m := seedMilestone(t, repo, "Release 1.0")
	attached := seedTask(t, repo, "In scope", "2025-01-01", "2025-01-05")
	attached.MilestoneID = &m.ID
	if _, err := repo.UpdateTask(ctx, *attached); err != nil {
		t.Fatalf("attaching milestone: %v", err)
	}
	seedTask(t, repo, "Out of scope", "2025-01-01", "2025-01-05")

	tasks, err := repo.GetTasksByMilestone(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetTasksByMilestone failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != attached.ID {
		t.Errorf("expected only the attached task, got %d tasks", len(tasks))
	}
}
