package userrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-profile/internal/domain/auth"
)

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, "Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.False(t, user.CreatedAt.IsZero())

	byEmail, found, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, user, byEmail)

	byID, found, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Ada", byID.Name)

	_, found, err = repo.GetByID(ctx, 42)
	require.NoError(t, err)
	require.False(t, found)

	_, err = repo.Create(ctx, "Other", "ada@example.com", "hash")
	require.ErrorIs(t, err, auth.ErrEmailExists)
}
