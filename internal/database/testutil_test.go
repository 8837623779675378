package database

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/obedvega/hito/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database with the full schema.
// This is the unified test database setup used by all tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBFile creates a file-based database for testing
// persistence across reopen.
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "hito-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpfile.Close()
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	db, err := InitDB(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, tmpfile.Name()
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// seedPerson inserts a valid person and returns the stored snapshot.
func seedPerson(t *testing.T, repo *Repository, name, email string) *models.Person {
	t.Helper()
	p, err := repo.CreatePerson(context.Background(), models.Person{
		Name:  name,
		Email: email,
		Role:  "Developer",
	})
	if err != nil {
		t.Fatalf("Failed to seed person: %v", err)
	}
	return p
}

// seedMilestone inserts a valid milestone and returns the stored snapshot.
func seedMilestone(t *testing.T, repo *Repository, name string) *models.Milestone {
	t.Helper()
	m, err := repo.CreateMilestone(context.Background(), models.Milestone{Name: name})
	if err != nil {
		t.Fatalf("Failed to seed milestone: %v", err)
	}
	return m
}

// seedTask inserts a valid unassigned task spanning the given dates.
func seedTask(t *testing.T, repo *Repository, title, start, due string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), models.Task{
		Title:     title,
		Status:    models.StatusNotStarted,
		Priority:  models.PriorityMedium,
		StartDate: mustDate(t, start),
		DueDate:   mustDate(t, due),
	})
	if err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}
	return task
}
