package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/avelichko/bookmarks/internal/common"
	"github.com/avelichko/bookmarks/internal/dbx"
	"github.com/avelichko/bookmarks/internal/server/auth"
	"github.com/avelichko/bookmarks/internal/server/config"
	"github.com/avelichko/bookmarks/internal/server/models"
	bookmarksrepo "github.com/avelichko/bookmarks/internal/server/repositories/bookmarks"
	usersrepo "github.com/avelichko/bookmarks/internal/server/repositories/users"
)

// --- helpers ---

func newUserService(t *testing.T, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewUserService(nil, rm, cfg)
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	updateOut *models.User
	updateErr error

	lastUpdate models.UserUpdate
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	f.lastUpdate = upd
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBookmarksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) Bookmarks(db dbx.DBTX) bookmarksrepo.Repository { return m.b }

func TestSignUp_Success(t *testing.T) {
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{createOut: &models.User{ID: 1, Email: "a@b.com"}},
	}
	s := newUserService(t, rm)

	tok, err := s.SignUp(context.Background(), "a@b.com", "123")
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(tok, []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if userID != 1 {
		t.Fatalf("token subject mismatch: got %d want 1", userID)
	}
}

func TestSignUp_CredentialsTaken(t *testing.T) {
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{createErr: common.ErrorAlreadyExists},
	}
	s := newUserService(t, rm)

	_, err := s.SignUp(context.Background(), "a@b.com", "123")
	if !errors.Is(err, common.ErrorCredentialsTaken) {
		t.Fatalf("expected common.ErrorCredentialsTaken, got %v", err)
	}
}

func TestSignUp_StoreFailurePropagates(t *testing.T) {
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{createErr: errors.New("db down")},
	}
	s := newUserService(t, rm)

	_, err := s.SignUp(context.Background(), "a@b.com", "123")
	if err == nil || errors.Is(err, common.ErrorCredentialsTaken) {
		t.Fatalf("expected opaque store failure, got %v", err)
	}
}

func TestSignIn_Success(t *testing.T) {
	hash, err := auth.HashPassword("123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byEmailOut: &models.User{ID: 7, Email: "a@b.com", Hash: hash}},
	}
	s := newUserService(t, rm)

	tok, err := s.SignIn(context.Background(), "a@b.com", "123")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(tok, []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if userID != 7 {
		t.Fatalf("token subject mismatch: got %d want 7", userID)
	}
}

func TestSignIn_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	hash, err := auth.HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	tests := []struct {
		name string
		repo *fakeUsersRepo
	}{
		{
			name: "unknown email",
			repo: &fakeUsersRepo{byEmailErr: common.ErrorNotFound},
		},
		{
			name: "wrong password",
			repo: &fakeUsersRepo{byEmailOut: &models.User{ID: 1, Email: "a@b.com", Hash: hash}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newUserService(t, &fakeRepoManager{u: tc.repo})
			_, err := s.SignIn(context.Background(), "a@b.com", "wrong")
			if !errors.Is(err, common.ErrorCredentialsIncorrect) {
				t.Fatalf("expected common.ErrorCredentialsIncorrect, got %v", err)
			}
		})
	}
}

func TestGetByID_Success(t *testing.T) {
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byIDOut: &models.User{ID: 3, Email: "a@b.com"}},
	}
	s := newUserService(t, rm)

	u, err := s.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if u.ID != 3 {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestEdit_PassesPartialUpdateThrough(t *testing.T) {
	repo := &fakeUsersRepo{updateOut: &models.User{ID: 3, Email: "new@b.com"}}
	s := newUserService(t, &fakeRepoManager{u: repo})

	email := "new@b.com"
	u, err := s.Edit(context.Background(), 3, models.UserUpdate{Email: &email})
	if err != nil {
		t.Fatalf("Edit error: %v", err)
	}
	if u.Email != "new@b.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if repo.lastUpdate.Email == nil || *repo.lastUpdate.Email != "new@b.com" {
		t.Fatalf("update not passed through: %+v", repo.lastUpdate)
	}
	if repo.lastUpdate.FirstName != nil || repo.lastUpdate.LastName != nil {
		t.Fatalf("unset fields must stay nil: %+v", repo.lastUpdate)
	}
}

func TestEdit_EmailTaken(t *testing.T) {
	s := newUserService(t, &fakeRepoManager{u: &fakeUsersRepo{updateErr: common.ErrorAlreadyExists}})

	email := "taken@b.com"
	_, err := s.Edit(context.Background(), 3, models.UserUpdate{Email: &email})
	if !errors.Is(err, common.ErrorCredentialsTaken) {
		t.Fatalf("expected common.ErrorCredentialsTaken, got %v", err)
	}
}
