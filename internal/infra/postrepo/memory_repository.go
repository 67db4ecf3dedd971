package postrepo

import (
	"context"
	"sync"

	"github.com/yanqian/astro-profile/internal/domain/post"
	"github.com/yanqian/astro-profile/pkg/util"
)

const defaultListLimit = 50

// MemoryRepository keeps the feed in process memory for tests/dev.
type MemoryRepository struct {
	mu         sync.RWMutex
	posts      []*post.Post
	postSeq    int64
	commentSeq int64
}

// NewMemoryRepository constructs an empty feed.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, p post.Post) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postSeq++
	now := util.NowUTC()
	stored := &post.Post{
		ID:         r.postSeq,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		Content:    p.Content,
		Likes:      []post.Like{},
		Comments:   []post.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.posts = append(r.posts, stored)
	return clonePost(stored), nil
}

func (r *MemoryRepository) Get(_ context.Context, id int64) (post.Post, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p := r.find(id); p != nil {
		return clonePost(p), true, nil
	}
	return post.Post{}, false, nil
}

// List returns up to limit posts, newest first.
func (r *MemoryRepository) List(_ context.Context, limit int) ([]post.Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]post.Post, 0, min(limit, len(r.posts)))
	for i := len(r.posts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, clonePost(r.posts[i]))
	}
	return out, nil
}

func (r *MemoryRepository) UpdateContent(_ context.Context, id int64, content string) (post.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return post.Post{}, false, nil
	}
	p.Content = content
	p.UpdatedAt = util.NowUTC()
	return clonePost(p), true, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) ToggleLike(_ context.Context, postID, userID int64) ([]post.Like, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(postID)
	if p == nil {
		return nil, false, nil
	}
	kept := p.Likes[:0]
	removed := false
	for _, like := range p.Likes {
		if like.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, like)
	}
	p.Likes = kept
	if !removed {
		p.Likes = append(p.Likes, post.Like{UserID: userID})
	}
	return append([]post.Like{}, p.Likes...), true, nil
}

func (r *MemoryRepository) AddComment(_ context.Context, postID int64, c post.Comment) ([]post.Comment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(postID)
	if p == nil {
		return nil, false, nil
	}
	r.commentSeq++
	c.ID = r.commentSeq
	c.CreatedAt = util.NowUTC()
	p.Comments = append(p.Comments, c)
	return append([]post.Comment{}, p.Comments...), true, nil
}

func (r *MemoryRepository) find(id int64) *post.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clonePost(p *post.Post) post.Post {
	out := *p
	out.Likes = append([]post.Like{}, p.Likes...)
	out.Comments = append([]post.Comment{}, p.Comments...)
	return out
}

var _ post.Repository = (*MemoryRepository)(nil)
