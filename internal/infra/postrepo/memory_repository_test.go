package postrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-profile/internal/domain/post"
)

func TestMemoryRepositoryListNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	for _, content := range []string{"one", "two", "three"} {
		_, err := repo.Create(ctx, post.Post{AuthorID: 1, AuthorName: "Ada", Content: content})
		require.NoError(t, err)
	}

	posts, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "three", posts[0].Content)
	require.Equal(t, "two", posts[1].Content)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	created, err := repo.Create(ctx, post.Post{AuthorID: 1, Content: "original"})
	require.NoError(t, err)
	_, _, err = repo.ToggleLike(ctx, created.ID, 5)
	require.NoError(t, err)

	got, found, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	got.Content = "mutated"
	got.Likes[0].UserID = 99

	again, _, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "original", again.Content)
	require.Equal(t, []post.Like{{UserID: 5}}, again.Likes)
}

func TestMemoryRepositoryMissingPost(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, found, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = repo.UpdateContent(ctx, 1, "x")
	require.NoError(t, err)
	require.False(t, found)

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	require.False(t, deleted)

	_, found, err = repo.ToggleLike(ctx, 1, 1)
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = repo.AddComment(ctx, 1, post.Comment{UserID: 1, Content: "x"})
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryRepositoryDeleteRemovesPost(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	a, err := repo.Create(ctx, post.Post{AuthorID: 1, Content: "a"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, post.Post{AuthorID: 1, Content: "b"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	posts, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, b.ID, posts[0].ID)
}
