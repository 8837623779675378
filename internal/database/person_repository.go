package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/types"
)

// PersonRepo handles all person persistence.
type PersonRepo struct {
	db *sql.DB
}

// Create validates and inserts a new person, returning the stored
// snapshot with its assigned identifier.
func (r *PersonRepo) Create(ctx context.Context, p models.Person) (*models.Person, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := r.checkEmailFree(ctx, p.Email, 0); err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO people (name, email, role) VALUES (?, ?, ?)`,
		p.Name, p.Email, p.Role,
	)
	if err != nil {
		return nil, &models.StorageError{Op: "create person", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, &models.StorageError{Op: "create person", Err: err}
	}

	p.ID = types.PersonID(id)
	return &p, nil
}

// GetByID retrieves a person by identifier.
func (r *PersonRepo) GetByID(ctx context.Context, id types.PersonID) (*models.Person, error) {
	p := &models.Person{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, role FROM people WHERE id = ?`,
		id.ToInt(),
	).Scan(&p.ID, &p.Name, &p.Email, &p.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "person", ID: id.ToInt()}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "get person", Err: err}
	}
	return p, nil
}

// GetAll retrieves every person in creation order.
func (r *PersonRepo) GetAll(ctx context.Context) ([]*models.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, role FROM people ORDER BY id`,
	)
	if err != nil {
		return nil, &models.StorageError{Op: "list people", Err: err}
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		p := &models.Person{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Role); err != nil {
			return nil, &models.StorageError{Op: "list people", Err: err}
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "list people", Err: err}
	}
	return people, nil
}

// Update replaces the stored record with p, rejecting without writing
// when validation fails or the person does not exist.
func (r *PersonRepo) Update(ctx context.Context, p models.Person) (*models.Person, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	found, err := exists(ctx, r.db, "people", p.ID.ToInt())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Entity: "person", ID: p.ID.ToInt()}
	}
	if err := r.checkEmailFree(ctx, p.Email, p.ID.ToInt()); err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE people SET name = ?, email = ?, role = ? WHERE id = ?`,
		p.Name, p.Email, p.Role, p.ID.ToInt(),
	)
	if err != nil {
		return nil, &models.StorageError{Op: "update person", Err: err}
	}
	return &p, nil
}

// Delete removes a person and clears the assignee reference on every
// task that pointed at them. Both happen in one transaction.
func (r *PersonRepo) Delete(ctx context.Context, id types.PersonID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, "people", id.ToInt())
		if err != nil {
			return err
		}
		if !found {
			return &models.NotFoundError{Entity: "person", ID: id.ToInt()}
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET assignee_id = NULL WHERE assignee_id = ?`,
			id.ToInt(),
		); err != nil {
			return &models.StorageError{Op: "clear assignee references", Err: err}
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM people WHERE id = ?`, id.ToInt(),
		); err != nil {
			return &models.StorageError{Op: "delete person", Err: err}
		}
		return nil
	})
}

// checkEmailFree enforces email uniqueness at write time. excludeID
// skips the person being updated so they can keep their own address.
func (r *PersonRepo) checkEmailFree(ctx context.Context, email string, excludeID int) error {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM people WHERE email = ? AND id != ?`,
		email, excludeID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return &models.StorageError{Op: "probe email", Err: err}
	}
	return &models.ValidationError{Field: "email", Reason: "already in use"}
}
