// Package person exposes person operations to the presentation layer.
package person

import (
	"context"
	"errors"

	"github.com/obedvega/hito/internal/database"
	"github.com/obedvega/hito/internal/events"
	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/query"
	"github.com/obedvega/hito/internal/types"
)

// Service defines all person-related operations
type Service interface {
	CreatePerson(ctx context.Context, req CreatePersonRequest) (*models.Person, error)
	GetPerson(ctx context.Context, id types.PersonID) (*models.Person, error)
	ListPeople(ctx context.Context) ([]*models.Person, error)
	SearchPeople(ctx context.Context, needle string) ([]*models.Person, error)
	UpdatePerson(ctx context.Context, req UpdatePersonRequest) (*models.Person, error)
	DeletePerson(ctx context.Context, id types.PersonID) error
}

// CreatePersonRequest encapsulates all data needed to create a person
type CreatePersonRequest struct {
	Name  string
	Email string
	Role  string
}

// UpdatePersonRequest encapsulates a partial update.
// Pointer fields are optional - nil means keep the stored value.
type UpdatePersonRequest struct {
	ID    types.PersonID
	Name  *string
	Email *string
	Role  *string
}

type service struct {
	repo     database.PersonStore
	reporter events.Reporter
}

// NewService creates a new person service
func NewService(repo database.PersonStore, reporter events.Reporter) Service {
	return &service{repo: repo, reporter: reporter}
}

func (s *service) CreatePerson(ctx context.Context, req CreatePersonRequest) (*models.Person, error) {
	created, err := s.repo.CreatePerson(ctx, models.Person{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		s.reportFailure("create person", err)
		return nil, err
	}
	s.reporter.EntityCreated("person", created.ID.ToInt())
	return created, nil
}

func (s *service) GetPerson(ctx context.Context, id types.PersonID) (*models.Person, error) {
	if id <= 0 {
		return nil, ErrInvalidPersonID
	}
	return s.repo.GetPersonByID(ctx, id)
}

func (s *service) ListPeople(ctx context.Context) ([]*models.Person, error) {
	return s.repo.GetAllPeople(ctx)
}

// SearchPeople narrows the full list to names containing needle,
// case-insensitively, preserving creation order.
func (s *service) SearchPeople(ctx context.Context, needle string) ([]*models.Person, error) {
	people, err := s.repo.GetAllPeople(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(people, func(p *models.Person) string { return p.Name }, needle, query.Options{}), nil
}

func (s *service) UpdatePerson(ctx context.Context, req UpdatePersonRequest) (*models.Person, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidPersonID
	}

	current, err := s.repo.GetPersonByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	merged := *current
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.Role != nil {
		merged.Role = *req.Role
	}

	updated, err := s.repo.UpdatePerson(ctx, merged)
	if err != nil {
		s.reportFailure("update person", err)
		return nil, err
	}
	s.reporter.EntityUpdated("person", updated.ID.ToInt())
	return updated, nil
}

func (s *service) DeletePerson(ctx context.Context, id types.PersonID) error {
	if id <= 0 {
		return ErrInvalidPersonID
	}
	if err := s.repo.DeletePerson(ctx, id); err != nil {
		s.reportFailure("delete person", err)
		return err
	}
	s.reporter.EntityDeleted("person", id.ToInt())
	return nil
}

func (s *service) reportFailure(op string, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		s.reporter.ValidationRejected("person", ve.Field, ve.Reason)
	case models.IsStorage(err):
		s.reporter.StorageFault(op, err)
	}
}
