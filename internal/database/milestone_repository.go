package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/types"
)

// MilestoneRepo handles all milestone persistence.
type MilestoneRepo struct {
	db *sql.DB
}

// Create validates and inserts a new milestone.
func (r *MilestoneRepo) Create(ctx context.Context, m models.Milestone) (*models.Milestone, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO milestones (name, target_date) VALUES (?, ?)`,
		m.Name, nullDate(m.TargetDate),
	)
	if err != nil {
		return nil, &models.StorageError{Op: "create milestone", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, &models.StorageError{Op: "create milestone", Err: err}
	}

	m.ID = types.MilestoneID(id)
	return &m, nil
}

// GetByID retrieves a milestone by identifier.
func (r *MilestoneRepo) GetByID(ctx context.Context, id types.MilestoneID) (*models.Milestone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, target_date FROM milestones WHERE id = ?`,
		id.ToInt(),
	)
	m, err := scanMilestone(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "milestone", ID: id.ToInt()}
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetAll retrieves every milestone in creation order.
func (r *MilestoneRepo) GetAll(ctx context.Context) ([]*models.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, target_date FROM milestones ORDER BY id`,
	)
	if err != nil {
		return nil, &models.StorageError{Op: "list milestones", Err: err}
	}
	defer rows.Close()

	var milestones []*models.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows.Scan)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "list milestones", Err: err}
	}
	return milestones, nil
}

// Update replaces the stored record with m.
func (r *MilestoneRepo) Update(ctx context.Context, m models.Milestone) (*models.Milestone, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	found, err := exists(ctx, r.db, "milestones", m.ID.ToInt())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Entity: "milestone", ID: m.ID.ToInt()}
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE milestones SET name = ?, target_date = ? WHERE id = ?`,
		m.Name, nullDate(m.TargetDate), m.ID.ToInt(),
	)
	if err != nil {
		return nil, &models.StorageError{Op: "update milestone", Err: err}
	}
	return &m, nil
}

// Delete removes a milestone and clears the milestone reference on
// every task that pointed at it, transactionally.
func (r *MilestoneRepo) Delete(ctx context.Context, id types.MilestoneID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, "milestones", id.ToInt())
		if err != nil {
			return err
		}
		if !found {
			return &models.NotFoundError{Entity: "milestone", ID: id.ToInt()}
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET milestone_id = NULL WHERE milestone_id = ?`,
			id.ToInt(),
		); err != nil {
			return &models.StorageError{Op: "clear milestone references", Err: err}
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM milestones WHERE id = ?`, id.ToInt(),
		); err != nil {
			return &models.StorageError{Op: "delete milestone", Err: err}
		}
		return nil
	})
}

// scanMilestone maps a milestones row onto an entity, converting the
// nullable stored date.
func scanMilestone(scan func(...any) error) (*models.Milestone, error) {
	m := &models.Milestone{}
	var target sql.NullString
	if err := scan(&m.ID, &m.Name, &target); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &models.StorageError{Op: "scan milestone", Err: err}
	}
	if target.Valid {
		t, err := parseDate(target.String)
		if err != nil {
			return nil, err
		}
		m.TargetDate = &t
	}
	return m, nil
}
