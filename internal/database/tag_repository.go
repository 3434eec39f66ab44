package database

import (
	"context"
	"database/sql"

	"github.com/dotodo/todos/internal/models"
)

// ============================================================================
// Tag Operations
// ============================================================================

// TagRepo provides data access for tags
type TagRepo struct {
	db *sql.DB
}

// Create inserts a new tag and returns the created record
func (r *TagRepo) Create(ctx context.Context, title, color string) (*models.Tag, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (title, color) VALUES (?, ?)`,
		title, color,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Tag{
		ID:    int(id),
		Title: title,
		Color: color,
	}, nil
}

// GetAll retrieves all tags ordered by title
func (r *TagRepo) GetAll(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, color FROM tags ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Title, &tag.Color); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// GetByID retrieves a single tag. Returns sql.ErrNoRows when the id has no
// matching record.
func (r *TagRepo) GetByID(ctx context.Context, id int) (*models.Tag, error) {
	tag := &models.Tag{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, color FROM tags WHERE id = ?`, id,
	).Scan(&tag.ID, &tag.Title, &tag.Color)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Update applies a partial update inside one transaction: nil fields keep
// their stored value, so two concurrent partial updates cannot lose each
// other's field. Returns sql.ErrNoRows when the id has no matching record.
func (r *TagRepo) Update(ctx context.Context, id int, title, color *string) (*models.Tag, error) {
	var tag *models.Tag
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		existing := &models.Tag{}
		err := tx.QueryRowContext(ctx,
			`SELECT id, title, color FROM tags WHERE id = ?`, id,
		).Scan(&existing.ID, &existing.Title, &existing.Color)
		if err != nil {
			return err
		}

		newTitle := existing.Title
		if title != nil {
			newTitle = *title
		}
		newColor := existing.Color
		if color != nil {
			newColor = *color
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE tags SET title = ?, color = ? WHERE id = ?`,
			newTitle, newColor, id,
		)
		if err != nil {
			return err
		}

		tag = &models.Tag{ID: id, Title: newTitle, Color: newColor}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag. Referencing tasks are removed by the ON DELETE
// CASCADE constraint on tasks.tag_id.
func (r *TagRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
