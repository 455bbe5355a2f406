package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruiz-dev/tasklist/internal/models"
)

func TestGormRepo_CreateUser_AndFind(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	user := models.User{Username: "alice", PasswordHash: "hash", IsActive: true}
	require.NoError(t, r.CreateUser(ctx, &user))
	require.NotZero(t, user.ID)

	byName, err := r.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.True(t, byName.IsActive)

	byID, err := r.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestGormRepo_CreateUser_Duplicate(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	first := models.User{Username: "alice", PasswordHash: "hash1", IsActive: true}
	require.NoError(t, r.CreateUser(ctx, &first))

	second := models.User{Username: "alice", PasswordHash: "hash2", IsActive: true}
	err := r.CreateUser(ctx, &second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserExists)

	// the original row is untouched
	kept, err := r.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash1", kept.PasswordHash)
}

func TestGormRepo_FindUser_NotFound(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.FindUserByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormRepo_FindUserByUsername_CaseSensitive(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	user := models.User{Username: "Alice", PasswordHash: "hash", IsActive: true}
	require.NoError(t, r.CreateUser(ctx, &user))

	_, err := r.FindUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}
