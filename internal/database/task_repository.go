package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/obedvega/hito/internal/models"
	"github.com/obedvega/hito/internal/types"
)

// TaskRepo handles all task persistence, including the write-time
// reference checks against people and milestones.
type TaskRepo struct {
	db *sql.DB
}

// Create validates and inserts a new task. Dangling assignee or
// milestone references are rejected before anything is written.
func (r *TaskRepo) Create(ctx context.Context, t models.Task) (*models.Task, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := r.checkReferences(ctx, r.db, &t); err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, priority, start_date, due_date, assignee_id, milestone_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, t.Status.String(), t.Priority.String(),
		formatDate(t.StartDate), formatDate(t.DueDate),
		nullPersonID(t.AssigneeID), nullMilestoneID(t.MilestoneID),
	)
	if err != nil {
		return nil, &models.StorageError{Op: "create task", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, &models.StorageError{Op: "create task", Err: err}
	}

	t.ID = types.TaskID(id)
	return &t, nil
}

// GetByID retrieves a task by identifier.
func (r *TaskRepo) GetByID(ctx context.Context, id types.TaskID) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status, priority, start_date, due_date, assignee_id, milestone_id
		 FROM tasks WHERE id = ?`,
		id.ToInt(),
	)
	t, err := scanTask(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "task", ID: id.ToInt()}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetAll retrieves every task in creation order.
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, status, priority, start_date, due_date, assignee_id, milestone_id
		 FROM tasks ORDER BY id`,
	)
	if err != nil {
		return nil, &models.StorageError{Op: "list tasks", Err: err}
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "list tasks", Err: err}
	}
	return tasks, nil
}

// GetByMilestone retrieves the tasks attached to a milestone, in
// creation order.
func (r *TaskRepo) GetByMilestone(ctx context.Context, id types.MilestoneID) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, status, priority, start_date, due_date, assignee_id, milestone_id
		 FROM tasks WHERE milestone_id = ? ORDER BY id`,
		id.ToInt(),
	)
	if err != nil {
		return nil, &models.StorageError{Op: "list tasks by milestone", Err: err}
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "list tasks by milestone", Err: err}
	}
	return tasks, nil
}

// Update replaces the stored record with t. The existence probe,
// reference checks, and write share one transaction so a rejection
// never leaves partial state behind.
func (r *TaskRepo) Update(ctx context.Context, t models.Task) (*models.Task, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, "tasks", t.ID.ToInt())
		if err != nil {
			return err
		}
		if !found {
			return &models.NotFoundError{Entity: "task", ID: t.ID.ToInt()}
		}
		if err := r.checkReferences(ctx, tx, &t); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?,
			 start_date = ?, due_date = ?, assignee_id = ?, milestone_id = ?
			 WHERE id = ?`,
			t.Title, t.Description, t.Status.String(), t.Priority.String(),
			formatDate(t.StartDate), formatDate(t.DueDate),
			nullPersonID(t.AssigneeID), nullMilestoneID(t.MilestoneID),
			t.ID.ToInt(),
		)
		if err != nil {
			return &models.StorageError{Op: "update task", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a task.
func (r *TaskRepo) Delete(ctx context.Context, id types.TaskID) error {
	found, err := exists(ctx, r.db, "tasks", id.ToInt())
	if err != nil {
		return err
	}
	if !found {
		return &models.NotFoundError{Entity: "task", ID: id.ToInt()}
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.ToInt()); err != nil {
		return &models.StorageError{Op: "delete task", Err: err}
	}
	return nil
}

// checkReferences verifies that the task's assignee and milestone, if
// set, name existing rows.
func (r *TaskRepo) checkReferences(ctx context.Context, q querier, t *models.Task) error {
	if t.AssigneeID != nil {
		found, err := exists(ctx, q, "people", t.AssigneeID.ToInt())
		if err != nil {
			return err
		}
		if !found {
			return &models.DanglingReferenceError{Entity: "person", ID: t.AssigneeID.ToInt()}
		}
	}
	if t.MilestoneID != nil {
		found, err := exists(ctx, q, "milestones", t.MilestoneID.ToInt())
		if err != nil {
			return err
		}
		if !found {
			return &models.DanglingReferenceError{Entity: "milestone", ID: t.MilestoneID.ToInt()}
		}
	}
	return nil
}

// scanTask maps a tasks row onto an entity. Enum values failing to
// parse mean the store is corrupt and surface as StorageError.
func scanTask(scan func(...any) error) (*models.Task, error) {
	t := &models.Task{}
	var (
		description           sql.NullString
		status, priority      string
		startDate, dueDate    string
		assignee, milestoneID sql.NullInt64
	)
	if err := scan(&t.ID, &t.Title, &description, &status, &priority,
		&startDate, &dueDate, &assignee, &milestoneID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &models.StorageError{Op: "scan task", Err: err}
	}

	t.Description = description.String

	parsedStatus, err := models.ParseStatus(status)
	if err != nil {
		return nil, &models.StorageError{Op: "scan task status", Err: err}
	}
	t.Status = parsedStatus

	parsedPriority, err := models.ParsePriority(priority)
	if err != nil {
		return nil, &models.StorageError{Op: "scan task priority", Err: err}
	}
	t.Priority = parsedPriority

	if t.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	if t.DueDate, err = parseDate(dueDate); err != nil {
		return nil, err
	}

	if assignee.Valid {
		id := types.PersonID(assignee.Int64)
		t.AssigneeID = &id
	}
	if milestoneID.Valid {
		id := types.MilestoneID(milestoneID.Int64)
		t.MilestoneID = &id
	}
	return t, nil
}

func nullPersonID(id *types.PersonID) any {
	if id == nil {
		return nil
	}
	return id.ToInt()
}

func nullMilestoneID(id *types.MilestoneID) any {
	if id == nil {
		return nil
	}
	return id.ToInt()
}
