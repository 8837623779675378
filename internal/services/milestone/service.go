// Package milestone exposes milestone operations to the presentation layer.
package milestone

import (
	"context"
	"errors"
	"time"

	"github.com/obedvega/hito/internal/database"
	"github.com/obedvega/hito/internal/events"
	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/query"
	"github.com/obedvega/hito/internal/types"
)

// Service defines all milestone-related operations
type Service interface {
	CreateMilestone(ctx context.Context, req CreateMilestoneRequest) (*models.Milestone, error)
	GetMilestone(ctx context.Context, id types.MilestoneID) (*models.Milestone, error)
	ListMilestones(ctx context.Context) ([]*models.Milestone, error)
	SearchMilestones(ctx context.Context, needle string) ([]*models.Milestone, error)
	UpdateMilestone(ctx context.Context, req UpdateMilestoneRequest) (*models.Milestone, error)
	DeleteMilestone(ctx context.Context, id types.MilestoneID) error
}

// CreateMilestoneRequest encapsulates all data needed to create a milestone
type CreateMilestoneRequest struct {
	Name       string
	TargetDate *time.Time
}

// UpdateMilestoneRequest encapsulates a partial update.
// Pointer fields are optional - nil means keep the stored value.
// ClearTargetDate removes an existing target date.
type UpdateMilestoneRequest struct {
	ID              types.MilestoneID
	Name            *string
	TargetDate      *time.Time
	ClearTargetDate bool
}

type service struct {
	repo     database.MilestoneStore
	reporter events.Reporter
}

// NewService creates a new milestone service
func NewService(repo database.MilestoneStore, reporter events.Reporter) Service {
	return &service{repo: repo, reporter: reporter}
}

func (s *service) CreateMilestone(ctx context.Context, req CreateMilestoneRequest) (*models.Milestone, error) {
	created, err := s.repo.CreateMilestone(ctx, models.Milestone{
		Name:       req.Name,
		TargetDate: req.TargetDate,
	})
	if err != nil {
		s.reportFailure("create milestone", err)
		return nil, err
	}
	s.reporter.EntityCreated("milestone", created.ID.ToInt())
	return created, nil
}

func (s *service) GetMilestone(ctx context.Context, id types.MilestoneID) (*models.Milestone, error) {
	if id <= 0 {
		return nil, ErrInvalidMilestoneID
	}
	return s.repo.GetMilestoneByID(ctx, id)
}

func (s *service) ListMilestones(ctx context.Context) ([]*models.Milestone, error) {
	return s.repo.GetAllMilestones(ctx)
}

// SearchMilestones narrows the full list to names containing needle,
// case-insensitively, preserving creation order.
func (s *service) SearchMilestones(ctx context.Context, needle string) ([]*models.Milestone, error) {
	milestones, err := s.repo.GetAllMilestones(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(milestones, func(m *models.Milestone) string { return m.Name }, needle, query.Options{}), nil
}

func (s *service) UpdateMilestone(ctx context.Context, req UpdateMilestoneRequest) (*models.Milestone, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidMilestoneID
	}

	current, err := s.repo.GetMilestoneByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	merged := *current
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.TargetDate != nil {
		merged.TargetDate = req.TargetDate
	}
	if req.ClearTargetDate {
		merged.TargetDate = nil
	}

	updated, err := s.repo.UpdateMilestone(ctx, merged)
	if err != nil {
		s.reportFailure("update milestone", err)
		return nil, err
	}
	s.reporter.EntityUpdated("milestone", updated.ID.ToInt())
	return updated, nil
}

func (s *service) DeleteMilestone(ctx context.Context, id types.MilestoneID) error {
	if id <= 0 {
		return ErrInvalidMilestoneID
	}
	if err := s.repo.DeleteMilestone(ctx, id); err != nil {
		s.reportFailure("delete milestone", err)
		return err
	}
	s.reporter.EntityDeleted("milestone", id.ToInt())
	return nil
}

func (s *service) reportFailure(op string, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		s.reporter.ValidationRejected("milestone", ve.Field, ve.Reason)
	case models.IsStorage(err):
		s.reporter.StorageFault(op, err)
	}
}
