package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelichko/bookmarks/internal/common"
	"github.com/avelichko/bookmarks/internal/server/models"
	"github.com/avelichko/bookmarks/internal/server/repositories/repomanager"
)

// BookmarkService provides per-owner CRUD on bookmarks. Every operation takes
// the authenticated owner id resolved from the access token; the owner is
// never taken from a request body.
type BookmarkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBookmarkService(db *sql.DB, m repomanager.RepositoryManager) *BookmarkService {
	return &BookmarkService{db: db, repomanager: m}
}

// List returns all bookmarks of the owner; an empty slice if there are none.
func (s *BookmarkService) List(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	result, err := s.repomanager.Bookmarks(s.db).FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}
	return result, nil
}

// GetByID returns the bookmark matching both id and owner, or
// common.ErrorNotFound when no row matches either predicate.
func (s *BookmarkService) GetByID(ctx context.Context, ownerID, bookmarkID int64) (*models.Bookmark, error) {
	b, err := s.repomanager.Bookmarks(s.db).FindByIDAndOwner(ctx, bookmarkID, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching bookmark: %w", err)
	}
	return b, nil
}

// Create inserts a new bookmark owned by ownerID.
func (s *BookmarkService) Create(ctx context.Context, ownerID int64, title, link string, description *string) (*models.Bookmark, error) {
	b := &models.Bookmark{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Link:        link,
	}

	b, err := s.repomanager.Bookmarks(s.db).Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("error creating bookmark: %w", err)
	}

	return b, nil
}

// checkOwnership fetches the bookmark by id alone and compares owners.
// An absent row and a row owned by someone else both yield
// common.ErrorAccessDenied; the two cases stay indistinguishable so callers
// cannot probe which ids exist.
//
// The fetch and the subsequent mutation are deliberately not wrapped in a
// transaction; a concurrent delete between the two calls makes the mutation
// affect zero rows while still reporting success.
func (s *BookmarkService) checkOwnership(ctx context.Context, ownerID, bookmarkID int64) error {
	b, err := s.repomanager.Bookmarks(s.db).GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorAccessDenied
		}
		return fmt.Errorf("error fetching bookmark: %w", err)
	}

	if b.UserID != ownerID {
		return common.ErrorAccessDenied
	}

	return nil
}

// EditByID applies a partial update after the ownership check passes.
// Omitted fields keep their prior values.
func (s *BookmarkService) EditByID(ctx context.Context, ownerID, bookmarkID int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	if err := s.checkOwnership(ctx, ownerID, bookmarkID); err != nil {
		return nil, err
	}

	b, err := s.repomanager.Bookmarks(s.db).Update(ctx, bookmarkID, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Row vanished between the ownership fetch and the update.
			return nil, common.ErrorAccessDenied
		}
		return nil, fmt.Errorf("error updating bookmark: %w", err)
	}

	return b, nil
}

// DeleteByID removes the bookmark after the ownership check passes.
func (s *BookmarkService) DeleteByID(ctx context.Context, ownerID, bookmarkID int64) error {
	if err := s.checkOwnership(ctx, ownerID, bookmarkID); err != nil {
		return err
	}

	if err := s.repomanager.Bookmarks(s.db).Delete(ctx, bookmarkID); err != nil {
		return fmt.Errorf("error deleting bookmark: %w", err)
	}

	return nil
}
