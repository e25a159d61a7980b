// Package services contains server-side business logic. This file implements
// UserService, which handles signup, signin, issuing JWT access tokens, and
// profile reads/edits.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avelichko/bookmarks/internal/common"
	"github.com/avelichko/bookmarks/internal/server/auth"
	"github.com/avelichko/bookmarks/internal/server/config"
	"github.com/avelichko/bookmarks/internal/server/models"
	"github.com/avelichko/bookmarks/internal/server/repositories/repomanager"
)

// UserService provides authentication and profile operations:
// - SignUp: hash the password, create the user, mint a token
// - SignIn: verify credentials and mint a token
// - GetByID / Edit: current-user read and partial profile update
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// SignUp creates a new account and returns a signed access token. A unique
// violation on email yields common.ErrorCredentialsTaken; any other storage
// failure propagates wrapped and unrecovered.
func (s *UserService) SignUp(ctx context.Context, email string, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, &models.User{Email: email, Hash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorCredentialsTaken
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.signToken(user.ID, user.Email)
}

// SignIn verifies the credentials and returns a signed access token. An
// unknown email and a wrong password both yield common.ErrorCredentialsIncorrect
// so callers cannot probe which emails are registered.
func (s *UserService) SignIn(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorCredentialsIncorrect
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	matches, err := auth.VerifyPassword(user.Hash, password)
	if err != nil {
		return "", fmt.Errorf("error verifying password: %w", err)
	}
	if !matches {
		return "", common.ErrorCredentialsIncorrect
	}

	return s.signToken(user.ID, user.Email)
}

// signToken mints a time-limited HS256 access token bound to the user id
// and email.
func (s *UserService) signToken(userID int64, email string) (string, error) {
	token, err := auth.GenerateToken(userID, email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return token, nil
}

// GetByID returns the user for the given id.
func (s *UserService) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}

// Edit applies a partial profile update (email/first/last name only) and
// returns the updated user. An email collision yields
// common.ErrorCredentialsTaken, same as on signup.
func (s *UserService) Edit(ctx context.Context, userID int64, upd models.UserUpdate) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).Update(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorCredentialsTaken
		}
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}
