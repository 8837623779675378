package database

import (
	"context"
	"database/sql"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes the entity repositories using struct embedding.
type Repository struct {
	*PersonRepo
	*MilestoneRepo
	*TaskRepo
}

// NewRepository creates a Repository wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		PersonRepo:    &PersonRepo{db: db},
		MilestoneRepo: &MilestoneRepo{db: db},
		TaskRepo:      &TaskRepo{db: db},
	}
}

// Wrapper methods for PersonRepo

func (r *Repository) CreatePerson(ctx context.Context, p models.Person) (*models.Person, error) {
	return r.PersonRepo.Create(ctx, p)
}

func (r *Repository) GetPersonByID(ctx context.Context, id types.PersonID) (*models.Person, error) {
	return r.PersonRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllPeople(ctx context.Context) ([]*models.Person, error) {
	return r.PersonRepo.GetAll(ctx)
}

func (r *Repository) UpdatePerson(ctx context.Context, p models.Person) (*models.Person, error) {
	return r.PersonRepo.Update(ctx, p)
}

func (r *Repository) DeletePerson(ctx context.Context, id types.PersonID) error {
	return r.PersonRepo.Delete(ctx, id)
}

// Wrapper methods for MilestoneRepo

func (r *Repository) CreateMilestone(ctx context.Context, m models.Milestone) (*models.Milestone, error) {
	return r.MilestoneRepo.Create(ctx, m)
}

func (r *Repository) GetMilestoneByID(ctx context.Context, id types.MilestoneID) (*models.Milestone, error) {
	return r.MilestoneRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllMilestones(ctx context.Context) ([]*models.Milestone, error) {
	return r.MilestoneRepo.GetAll(ctx)
}

func (r *Repository) UpdateMilestone(ctx context.Context, m models.Milestone) (*models.Milestone, error) {
	return r.MilestoneRepo.Update(ctx, m)
}

func (r *Repository) DeleteMilestone(ctx context.Context, id types.MilestoneID) error {
	return r.MilestoneRepo.Delete(ctx, id)
}

// Wrapper methods for TaskRepo

func (r *Repository) CreateTask(ctx context.Context, t models.Task) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, t)
}

func (r *Repository) GetTaskByID(ctx context.Context, id types.TaskID) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTasksByMilestone(ctx context.Context, id types.MilestoneID) ([]*models.Task, error) {
	return r.TaskRepo.GetByMilestone(ctx, id)
}

func (r *Repository) UpdateTask(ctx context.Context, t models.Task) (*models.Task, error) {
	return r.TaskRepo.Update(ctx, t)
}

func (r *Repository) DeleteTask(ctx context.Context, id types.TaskID) error {
	return r.TaskRepo.Delete(ctx, id)
}
