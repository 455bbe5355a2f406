package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aruiz-dev/tasklist/internal/hash"
	"github.com/aruiz-dev/tasklist/internal/models"
	"github.com/aruiz-dev/tasklist/internal/repo"
	"github.com/aruiz-dev/tasklist/internal/tokens"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))
	return &repo.GormRepo{DB: db}
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Repo:   newTestRepo(t),
		Tokens: &tokens.Service{Secret: []byte("test-jwt-secret"), TTL: 30 * time.Minute},
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret1"},
		{name: "short username", username: "ab", password: "secret1"},
		{name: "long username", username: strings.Repeat("a", 51), password: "secret1"},
		{name: "empty password", username: "alice", password: ""},
		{name: "short password", username: "alice", password: "12345"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := svc.Register(ctx, tt.username, tt.password)
			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, hash.CheckPassword(user.PasswordHash, "secret1"))
}

func TestAuthService_Register_Conflict(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	user, err := svc.Register(ctx, "alice", "another1")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()))
}

func TestAuthService_Login_BadCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "nobody", "secret1")
	require.Error(t, unknownErr)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, wrongErr := svc.Login(ctx, "alice", "wrongpass")
	require.Error(t, wrongErr)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
