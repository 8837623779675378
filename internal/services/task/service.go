// Package task exposes task operations to the presentation layer,
// including the timeline and export views built on top of the task
// collection.
package task

import (
	"context"
	"errors"
	"time"

	"github.com/obedvega/hito/internal/database"
	"github.com/obedvega/hito/internal/events"
	"github.com/obedvega/hito/internal/export"
	"github.com/obedvega/hito/internal/gantt"
	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/query"
	"github.com/obedvega/hito/internal/types"
)

// Service defines all task-related operations
type Service interface {
	// CRUD
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id types.TaskID) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id types.TaskID) error

	// Views over the task collection
	SearchTasks(ctx context.Context, needle string) ([]*models.Task, error)
	Timeline(ctx context.Context, needle string, padDays int) ([]gantt.Row, error)
	ExportCSV(ctx context.Context, needle string) (string, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.Status
	Priority    models.Priority
	StartDate   time.Time
	DueDate     time.Time
	AssigneeID  *types.PersonID
	MilestoneID *types.MilestoneID
}

// UpdateTaskRequest encapsulates a partial update.
// Pointer fields are optional - nil means keep the stored value.
// The Clear flags drop an existing reference.
type UpdateTaskRequest struct {
	ID             types.TaskID
	Title          *string
	Description    *string
	Status         *models.Status
	Priority       *models.Priority
	StartDate      *time.Time
	DueDate        *time.Time
	AssigneeID     *types.PersonID
	ClearAssignee  bool
	MilestoneID    *types.MilestoneID
	ClearMilestone bool
}

type service struct {
	repo     database.DataStore
	reporter events.Reporter
}

// NewService creates a new task service
func NewService(repo database.DataStore, reporter events.Reporter) Service {
	return &service{repo: repo, reporter: reporter}
}

func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	created, err := s.repo.CreateTask(ctx, models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
		MilestoneID: req.MilestoneID,
	})
	if err != nil {
		s.reportFailure("create task", err)
		return nil, err
	}
	s.reporter.EntityCreated("task", created.ID.ToInt())
	return created, nil
}

func (s *service) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetTaskByID(ctx, id)
}

func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repo.GetAllTasks(ctx)
}

func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidTaskID
	}

	current, err := s.repo.GetTaskByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	merged := *current
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.Priority != nil {
		merged.Priority = *req.Priority
	}
	if req.StartDate != nil {
		merged.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		merged.DueDate = *req.DueDate
	}
	if req.AssigneeID != nil {
		merged.AssigneeID = req.AssigneeID
	}
	if req.ClearAssignee {
		merged.AssigneeID = nil
	}
	if req.MilestoneID != nil {
		merged.MilestoneID = req.MilestoneID
	}
	if req.ClearMilestone {
		merged.MilestoneID = nil
	}

	updated, err := s.repo.UpdateTask(ctx, merged)
	if err != nil {
		s.reportFailure("update task", err)
		return nil, err
	}
	s.reporter.EntityUpdated("task", updated.ID.ToInt())
	return updated, nil
}

func (s *service) DeleteTask(ctx context.Context, id types.TaskID) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		s.reportFailure("delete task", err)
		return err
	}
	s.reporter.EntityDeleted("task", id.ToInt())
	return nil
}

// SearchTasks narrows the full list to titles containing needle,
// case-insensitively, preserving creation order.
func (s *service) SearchTasks(ctx context.Context, needle string) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(tasks, func(t *models.Task) string { return t.Title }, needle, query.Options{}), nil
}

// Timeline lays out the tasks matching needle over their derived date
// range, padded by padDays on each side.
func (s *service) Timeline(ctx context.Context, needle string, padDays int) ([]gantt.Row, error) {
	tasks, err := s.SearchTasks(ctx, needle)
	if err != nil {
		return nil, err
	}
	return gantt.Layout(tasks, gantt.DefaultRange(tasks, padDays)), nil
}

// ExportCSV serializes the tasks matching needle with resolved
// assignee and milestone names. The returned buffer is not persisted
// here; the caller decides where it goes.
func (s *service) ExportCSV(ctx context.Context, needle string) (string, error) {
	tasks, err := s.SearchTasks(ctx, needle)
	if err != nil {
		return "", err
	}

	people, err := s.repo.GetAllPeople(ctx)
	if err != nil {
		return "", err
	}
	milestones, err := s.repo.GetAllMilestones(ctx)
	if err != nil {
		return "", err
	}

	peopleNames := make(map[types.PersonID]string, len(people))
	for _, p := range people {
		peopleNames[p.ID] = p.Name
	}
	milestoneNames := make(map[types.MilestoneID]string, len(milestones))
	for _, m := range milestones {
		milestoneNames[m.ID] = m.Name
	}

	return export.Tasks(tasks, peopleNames, milestoneNames)
}

func (s *service) reportFailure(op string, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		s.reporter.ValidationRejected("task", ve.Field, ve.Reason)
	case models.IsStorage(err):
		s.reporter.StorageFault(op, err)
	}
}
