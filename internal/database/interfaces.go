package database

import (
	"context"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/types"
)

// PersonStore defines person persistence operations.
type PersonStore interface {
	CreatePerson(ctx context.Context, p models.Person) (*models.Person, error)
	GetPersonByID(ctx context.Context, id types.PersonID) (*models.Person, error)
	GetAllPeople(ctx context.Context) ([]*models.Person, error)
	UpdatePerson(ctx context.Context, p models.Person) (*models.Person, error)
	DeletePerson(ctx context.Context, id types.PersonID) error
}

// MilestoneStore defines milestone persistence operations.
type MilestoneStore interface {
	CreateMilestone(ctx context.Context, m models.Milestone) (*models.Milestone, error)
	GetMilestoneByID(ctx context.Context, id types.MilestoneID) (*models.Milestone, error)
	GetAllMilestones(ctx context.Context) ([]*models.Milestone, error)
	UpdateMilestone(ctx context.Context, m models.Milestone) (*models.Milestone, error)
	DeleteMilestone(ctx context.Context, id types.MilestoneID) error
}

// TaskStore defines task persistence operations.
type TaskStore interface {
	CreateTask(ctx context.Context, t models.Task) (*models.Task, error)
	GetTaskByID(ctx context.Context, id types.TaskID) (*models.Task, error)
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTasksByMilestone(ctx context.Context, id types.MilestoneID) ([]*models.Task, error)
	UpdateTask(ctx context.Context, t models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id types.TaskID) error
}

// DataStore is the full persistence surface the services depend on.
// Depending on this interface instead of *Repository keeps the
// services testable against fakes.
type DataStore interface {
	PersonStore
	MilestoneStore
	TaskStore
}

// Compile-time verification that Repository implements DataStore
var _ DataStore = (*Repository)(nil)
