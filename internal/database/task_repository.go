package database

import (
	"context"
	"database/sql"

	"github.com/dotodo/todos/internal/models"
)

// ============================================================================
// Task Operations
// ============================================================================

// TaskRepo provides data access for tasks. Every read joins the tags table so
// callers always receive the resolved tag, never a bare id.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `t.id, t.title, t.description, t.is_done,
	g.id, g.title, g.color`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	var description sql.NullString
	err := row.Scan(
		&task.ID, &task.Title, &description, &task.IsDone,
		&task.Tag.ID, &task.Tag.Title, &task.Tag.Color,
	)
	if err != nil {
		return nil, err
	}
	task.Description = NullStringToString(description)
	return task, nil
}

// Create inserts a new task within a single transaction, verifying the tag
// reference resolves first. Returns ErrTagMissing for a dangling tag id.
// New tasks always start with is_done = 0.
func (r *TaskRepo) Create(ctx context.Context, title, description string, tagID int) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM tags WHERE id = ?`, tagID,
		).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrTagMissing
		}
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, is_done, tag_id)
			 VALUES (?, ?, 0, ?)`,
			title, description, tagID,
		)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		task, err = scanTask(tx.QueryRowContext(ctx,
			`SELECT `+taskColumns+`
			 FROM tasks t INNER JOIN tags g ON g.id = t.tag_id
			 WHERE t.id = ?`, id,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// GetAll retrieves all tasks with their tags resolved
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t INNER JOIN tags g ON g.id = t.tag_id
		 ORDER BY t.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// GetByID retrieves a single task with its tag resolved. Returns
// sql.ErrNoRows when the id has no matching record.
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	return scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t INNER JOIN tags g ON g.id = t.tag_id
		 WHERE t.id = ?`, id,
	))
}

// Update applies a partial update inside one transaction: nil fields keep
// their stored value, a non-nil tag id must resolve (ErrTagMissing
// otherwise), and an unknown task id yields sql.ErrNoRows. The updated row
// is read back within the same transaction so the caller observes either the
// full update or none of it.
func (r *TaskRepo) Update(ctx context.Context, id int, title, description *string, isDone *bool, tagID *int) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		existing, err := scanTask(tx.QueryRowContext(ctx,
			`SELECT `+taskColumns+`
			 FROM tasks t INNER JOIN tags g ON g.id = t.tag_id
			 WHERE t.id = ?`, id,
		))
		if err != nil {
			return err
		}

		newTitle := existing.Title
		if title != nil {
			newTitle = *title
		}
		newDescription := existing.Description
		if description != nil {
			newDescription = *description
		}
		newDone := existing.IsDone
		if isDone != nil {
			newDone = *isDone
		}
		newTagID := existing.Tag.ID
		if tagID != nil {
			var exists int
			err := tx.QueryRowContext(ctx,
				`SELECT 1 FROM tags WHERE id = ?`, *tagID,
			).Scan(&exists)
			if err == sql.ErrNoRows {
				return ErrTagMissing
			}
			if err != nil {
				return err
			}
			newTagID = *tagID
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE tasks
			 SET title = ?, description = ?, is_done = ?, tag_id = ?,
			     updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			newTitle, newDescription, newDone, newTagID, id,
		)
		if err != nil {
			return err
		}

		task, err = scanTask(tx.QueryRowContext(ctx,
			`SELECT `+taskColumns+`
			 FROM tasks t INNER JOIN tags g ON g.id = t.tag_id
			 WHERE t.id = ?`, id,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task and returns the removed record. Returns
// sql.ErrNoRows when the id has no matching record.
func (r *TaskRepo) Delete(ctx context.Context, id int) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		task, err = scanTask(tx.QueryRowContext(ctx,
			`SELECT `+taskColumns+`
			 FROM tasks t INNER JOIN tags g ON g.id = t.tag_id
			 WHERE t.id = ?`, id,
		))
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}
