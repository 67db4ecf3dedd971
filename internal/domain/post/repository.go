package post

import (
	"context"

	"github.com/yanqian/astro-profile/internal/domain/auth"
)

// Repository persists posts. Methods addressing a single post report a
// missing post with found=false rather than an error.
type Repository interface {
	Create(ctx context.Context, p Post) (Post, error)
	Get(ctx context.Context, id int64) (Post, bool, error)
	List(ctx context.Context, limit int) ([]Post, error)
	UpdateContent(ctx context.Context, id int64, content string) (Post, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// ToggleLike adds the user's like, or removes it when already present,
	// and returns the post's likes afterwards.
	ToggleLike(ctx context.Context, postID, userID int64) ([]Like, bool, error)
	AddComment(ctx context.Context, postID int64, c Comment) ([]Comment, bool, error)
}

// Authors resolves the display name of the acting user.
type Authors interface {
	Profile(ctx context.Context, userID int64) (auth.UserView, error)
}
