package httpapi

// In-memory repository implementations backing the transport tests, so the
// full stack (router, middleware, services) runs without a database.

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/avelichko/bookmarks/internal/common"
	"github.com/avelichko/bookmarks/internal/dbx"
	"github.com/avelichko/bookmarks/internal/server/models"
	bookmarksrepo "github.com/avelichko/bookmarks/internal/server/repositories/bookmarks"
	usersrepo "github.com/avelichko/bookmarks/internal/server/repositories/users"
)

type inMemoryUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newInMemoryUsersRepo() *inMemoryUsersRepo {
	return &inMemoryUsersRepo{nextID: 1, users: make(map[int64]models.User)}
}

func (r *inMemoryUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.nextID++
	r.users[user.ID] = *user

	out := *user
	return &out, nil
}

func (r *inMemoryUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *inMemoryUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := u
	return &out, nil
}

func (r *inMemoryUsersRepo) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *upd.Email {
				return nil, common.ErrorAlreadyExists
			}
		}
		u.Email = *upd.Email
	}
	if upd.FirstName != nil {
		u.FirstName = upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = upd.LastName
	}
	u.UpdatedAt = time.Now()

	r.users[id] = u
	out := u
	return &out, nil
}

type inMemoryBookmarksRepo struct {
	mu        sync.Mutex
	nextID    int64
	bookmarks map[int64]models.Bookmark
}

func newInMemoryBookmarksRepo() *inMemoryBookmarksRepo {
	return &inMemoryBookmarksRepo{nextID: 1, bookmarks: make(map[int64]models.Bookmark)}
}

func (r *inMemoryBookmarksRepo) Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b.ID = r.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	r.nextID++
	r.bookmarks[b.ID] = *b

	out := *b
	return &out, nil
}

func (r *inMemoryBookmarksRepo) FindByOwner(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Bookmark, 0)
	for id := int64(1); id < r.nextID; id++ {
		if b, ok := r.bookmarks[id]; ok && b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *inMemoryBookmarksRepo) FindByIDAndOwner(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, common.ErrorNotFound
	}
	out := b
	return &out, nil
}

func (r *inMemoryBookmarksRepo) GetByID(ctx context.Context, id int64) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookmarks[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := b
	return &out, nil
}

func (r *inMemoryBookmarksRepo) Update(ctx context.Context, id int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookmarks[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Description != nil {
		b.Description = upd.Description
	}
	if upd.Link != nil {
		b.Link = *upd.Link
	}
	b.UpdatedAt = time.Now()

	r.bookmarks[id] = b
	out := b
	return &out, nil
}

func (r *inMemoryBookmarksRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bookmarks, id)
	return nil
}

type inMemoryRepoManager struct {
	u *inMemoryUsersRepo
	b *inMemoryBookmarksRepo
}

func newInMemoryRepoManager() *inMemoryRepoManager {
	return &inMemoryRepoManager{u: newInMemoryUsersRepo(), b: newInMemoryBookmarksRepo()}
}

func (m *inMemoryRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *inMemoryRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *inMemoryRepoManager) Bookmarks(db dbx.DBTX) bookmarksrepo.Repository { return m.b }
