package person

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/obedvega/hito/internal/database"
	"github.com/obedvega/hito/internal/events"
	"github.com/obedvega/hito/internal/models"
)

func setupService(t *testing.T) (Service, *events.Recorder) {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	recorder := &events.Recorder{}
	return NewService(database.NewRepository(db), recorder), recorder
}

func TestCreatePersonPublishesEvent(t *testing.T) {
	svc, recorder := setupService(t)

	created, err := svc.CreatePerson(context.Background(), CreatePersonRequest{
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  "Developer",
	})
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned ID")
	}
	if len(recorder.Entries) != 1 || !strings.Contains(recorder.Entries[0], "created person") {
		t.Errorf("expected created event, got %v", recorder.Entries)
	}
}

func TestCreatePersonRejectionReported(t *testing.T) {
	svc, recorder := setupService(t)

	_, err := svc.CreatePerson(context.Background(), CreatePersonRequest{
		Name:  "Ana",
		Email: "no-at-sign",
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(recorder.Entries) != 1 || !strings.Contains(recorder.Entries[0], "rejected person email") {
		t.Errorf("expected rejection event, got %v", recorder.Entries)
	}
}

func TestUpdatePersonPartialMerge(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreatePerson(ctx, CreatePersonRequest{
		Name: "Ana", Email: "ana@example.com", Role: "Developer",
	})
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}

	role := "Tech Lead"
	updated, err := svc.UpdatePerson(ctx, UpdatePersonRequest{ID: created.ID, Role: &role})
	if err != nil {
		t.Fatalf("UpdatePerson failed: %v", err)
	}
	if updated.Role != "Tech Lead" {
		t.Errorf("role not applied: %+v", updated)
	}
	if updated.Name != "Ana" || updated.Email != "ana@example.com" {
		t.Errorf("unset fields changed: %+v", updated)
	}
}

func TestSearchPeople(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, p := range []CreatePersonRequest{
		{Name: "Ana Flores", Email: "ana@example.com"},
		{Name: "Mariana Soto", Email: "mariana@example.com"},
		{Name: "Ben Cruz", Email: "ben@example.com"},
	} {
		if _, err := svc.CreatePerson(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	matches, err := svc.SearchPeople(ctx, "ana")
	if err != nil {
		t.Fatalf("SearchPeople failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
}

func TestInvalidIDs(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.GetPerson(ctx, 0); err != ErrInvalidPersonID {
		t.Errorf("GetPerson(0): expected ErrInvalidPersonID, got %v", err)
	}
	if err := svc.DeletePerson(ctx, -1); err != ErrInvalidPersonID {
		t.Errorf("DeletePerson(-1): expected ErrInvalidPersonID, got %v", err)
	}
}
