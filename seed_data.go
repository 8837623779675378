//go:build ignore
// +build ignore

// Helper script to seed sample planner data.
// Run with: go run seed_data.go

package main

import (
	"context"
	"log"
	"time"

	"github.com/obedvega/hito/internal/database"
	"github.com/obedvega/hito/internal/events"
	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/services/milestone"
	"github.com/obedvega/hito/internal/services/person"
	"github.com/obedvega/hito/internal/services/task"
)

func main() {
	ctx := context.Background()

	path, err := database.DefaultPath()
	if err != nil {
		log.Fatalf("Failed to resolve database path: %v", err)
	}
	db, err := database.InitDB(ctx, path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	reporter := events.NopReporter{}
	people := person.NewService(repo, reporter)
	milestones := milestone.NewService(repo, reporter)
	tasks := task.NewService(repo, reporter)

	ana, err := people.CreatePerson(ctx, person.CreatePersonRequest{
		Name: "Ana Flores", Email: "ana@demo.dev", Role: "Engineer",
	})
	if err != nil {
		log.Fatal(err)
	}
	ben, err := people.CreatePerson(ctx, person.CreatePersonRequest{
		Name: "Ben Okafor", Email: "ben@demo.dev", Role: "Designer",
	})
	if err != nil {
		log.Fatal(err)
	}

	target := time.Now().AddDate(0, 1, 0)
	launch, err := milestones.CreateMilestone(ctx, milestone.CreateMilestoneRequest{
		Name: "v1 Launch", TargetDate: &target,
	})
	if err != nil {
		log.Fatal(err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	seed := []task.CreateTaskRequest{
		{
			Title: "Design onboarding flow", Status: models.StatusInProgress,
			Priority: models.PriorityHigh, StartDate: today,
			DueDate: today.AddDate(0, 0, 7), AssigneeID: &ben.ID, MilestoneID: &launch.ID,
		},
		{
			Title: "Build billing backend", Status: models.StatusNotStarted,
			Priority: models.PriorityMedium, StartDate: today.AddDate(0, 0, 3),
			DueDate: today.AddDate(0, 0, 14), AssigneeID: &ana.ID, MilestoneID: &launch.ID,
		},
		{
			Title: "Write release notes", Status: models.StatusNotStarted,
			Priority: models.PriorityLow, StartDate: today.AddDate(0, 0, 10),
			DueDate: today.AddDate(0, 0, 12),
		},
	}
	for _, req := range seed {
		if _, err := tasks.CreateTask(ctx, req); err != nil {
			log.Fatalf("Failed to create task %q: %v", req.Title, err)
		}
	}

	log.Printf("Seeded 2 people, 1 milestone, %d tasks into %s", len(seed), path)
}
