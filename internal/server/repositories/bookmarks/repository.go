// Package bookmarks contains the persistence layer for bookmarks.
package bookmarks

import (
	"context"

	"github.com/avelichko/bookmarks/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	FindByOwner(ctx context.Context, userID int64) ([]models.Bookmark, error)
	FindByIDAndOwner(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	GetByID(ctx context.Context, id int64) (*models.Bookmark, error)
	Update(ctx context.Context, id int64, upd models.BookmarkUpdate) (*models.Bookmark, error)
	Delete(ctx context.Context, id int64) error
}
