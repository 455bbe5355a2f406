package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aruiz-dev/tasklist/internal/hash"
	"github.com/aruiz-dev/tasklist/internal/logging"
	"github.com/aruiz-dev/tasklist/internal/models"
	"github.com/aruiz-dev/tasklist/internal/repo"
	"github.com/aruiz-dev/tasklist/internal/tokens"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Service
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return nil, fmt.Errorf("username must be %d-%d characters: %w", minUsernameLen, maxUsernameLen, ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
		IsActive:     true,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserExists) {
			l.Warn("register_conflict", "status", 409, "username", username)
			return nil, ErrConflict
		}
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}

	l.Info("register_success", "user_id", user.ID)
	return &user, nil
}

// Login collapses unknown-username and wrong-password into one error so the
// caller cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown username")
			return "", ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "password mismatch")
		return "", ErrInvalidCredentials
	}

	token, _, err := s.Tokens.Issue(user.Username)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	l.Info("login_success")
	return token, nil
}
