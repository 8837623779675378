package database

import (
	"context"
	"testing"

	"github.com/obedvega/hito/internal/models"
)

func TestCreatePersonRoundTrip(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreatePerson(ctx, models.Person{
		Name:  "Ana Flores",
		Email: "ana@example.com",
		Role:  "Manager",
	})
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a non-zero assigned ID")
	}

	got, err := repo.GetPersonByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPersonByID failed: %v", err)
	}
	if *got != *created {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, created)
	}
}

func TestCreatePersonRejectsInvalid(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		person models.Person
	}{
		{"empty name", models.Person{Name: "", Email: "a@b.com"}},
		{"bad email", models.Person{Name: "Ana", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.CreatePerson(ctx, tt.person); !models.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	// Nothing may have been persisted by the rejected creates
	people, err := repo.GetAllPeople(ctx)
	if err != nil {
		t.Fatalf("GetAllPeople failed: %v", err)
	}
	if len(people) != 0 {
		t.Errorf("expected empty store, found %d people", len(people))
	}
}

func TestCreatePersonRejectsDuplicateEmail(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	seedPerson(t, repo, "Ana", "ana@example.com")
	_, err := repo.CreatePerson(ctx, models.Person{Name: "Other Ana", Email: "ana@example.com"})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError for duplicate email, got %v", err)
	}
}

func TestGetAllPeopleCreationOrder(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	first := seedPerson(t, repo, "Zoe", "zoe@example.com")
	second := seedPerson(t, repo, "Ana", "ana@example.com")

	people, err := repo.GetAllPeople(context.Background())
	if err != nil {
		t.Fatalf("GetAllPeople failed: %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("expected 2 people, got %d", len(people))
	}
	// Creation order, not alphabetical
	if people[0].ID != first.ID || people[1].ID != second.ID {
		t.Errorf("expected creation order [%d %d], got [%d %d]",
			first.ID, second.ID, people[0].ID, people[1].ID)
	}
}

func TestUpdatePerson(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	p := seedPerson(t, repo, "Ana", "ana@example.com")
	p.Role = "Tech Lead"
	p.Email = "ana.flores@example.com"

	updated, err := repo.UpdatePerson(ctx, *p)
	if err != nil {
		t.Fatalf("UpdatePerson failed: %v", err)
	}

	got, err := repo.GetPersonByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPersonByID failed: %v", err)
	}
	if *got != *updated {
		t.Errorf("stored record %+v does not match update result %+v", got, updated)
	}
}

func TestUpdatePersonKeepsOwnEmail(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	p := seedPerson(t, repo, "Ana", "ana@example.com")
	p.Name = "Ana Flores"
	if _, err := repo.UpdatePerson(context.Background(), *p); err != nil {
		t.Fatalf("update with unchanged email should pass the uniqueness check: %v", err)
	}
}

func TestUpdatePersonNotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.UpdatePerson(context.Background(), models.Person{
		ID: 42, Name: "Ghost", Email: "ghost@example.com",
	})
	if !models.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeletePersonClearsTaskReferences(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	victim := seedPerson(t, repo, "Ana", "ana@example.com")
	other := seedPerson(t, repo, "Ben", "ben@example.com")

	// Two tasks assigned to the victim, one to someone else
	assigned1 := seedTask(t, repo, "Task one", "2025-01-01", "2025-01-05")
	assigned1.AssigneeID = &victim.ID
	if _, err := repo.UpdateTask(ctx, *assigned1); err != nil {
		t.Fatalf("assigning task: %v", err)
	}
	assigned2 := seedTask(t, repo, "Task two", "2025-01-02", "2025-01-06")
	assigned2.AssigneeID = &victim.ID
	if _, err := repo.UpdateTask(ctx, *assigned2); err != nil {
		t.Fatalf("assigning task: %v", err)
	}
	unaffected := seedTask(t, repo, "Task three", "2025-01-03", "2025-01-07")
	unaffected.AssigneeID = &other.ID
	if _, err := repo.UpdateTask(ctx, *unaffected); err != nil {
		t.Fatalf("assigning task: %v", err)
	}

	if err := repo.DeletePerson(ctx, victim.ID); err != nil {
		t.Fatalf("DeletePerson failed: %v", err)
	}

	if _, err := repo.GetPersonByID(ctx, victim.ID); !models.IsNotFound(err) {
		t.Fatalf("expected person to be gone, got %v", err)
	}

	tasks, err := repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks failed: %v", err)
	}
	var cleared, kept int
	for _, task := range tasks {
		switch {
		case task.AssigneeID == nil:
			cleared++
		case *task.AssigneeID == other.ID:
			kept++
		default:
			t.Errorf("task %d still references deleted person", task.ID)
		}
	}
	if cleared != 2 || kept != 1 {
		t.Errorf("expected exactly 2 cleared and 1 kept, got %d/%d", cleared, kept)
	}
}

func TestDeletePersonNotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	err := repo.DeletePerson(context.Background(), 42)
	if !models.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
