package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelichko/bookmarks/internal/common"
	"github.com/avelichko/bookmarks/internal/dbx"
	"github.com/avelichko/bookmarks/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {

	query :=
		`INSERT INTO bookmarks (user_id, title, description, link)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link).
		Scan(&bookmark.ID, &bookmark.CreatedAt, &bookmark.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}

func (r *PostgresRepository) FindByOwner(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	query :=
		`SELECT id, user_id, title, description, link, created_at, updated_at FROM bookmarks
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FindByIDAndOwner(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	query :=
		`SELECT id, user_id, title, description, link, created_at, updated_at FROM bookmarks
		 WHERE id = $1 AND user_id = $2
		 `

	b := &models.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Bookmark, error) {
	query :=
		`SELECT id, user_id, title, description, link, created_at, updated_at FROM bookmarks
		 WHERE id = $1
		 `

	b := &models.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

// Update applies the non-nil fields of upd and returns the updated row.
func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	query :=
		`UPDATE bookmarks
		 SET title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     link = COALESCE($4, link),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING id, user_id, title, description, link, created_at, updated_at
		 `

	b := &models.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id, upd.Title, upd.Description, upd.Link).
		Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

// Delete removes the row by id. Deleting an id that no longer exists is not
// an error; the statement simply affects zero rows.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookmarks WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
