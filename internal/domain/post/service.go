package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	apperrors "github.com/yanqian/astro-profile/pkg/errors"
)

// Service exposes the community feed.
type Service interface {
	Create(ctx context.Context, authorID int64, req ContentRequest) (Post, error)
	List(ctx context.Context, limit int) ([]Post, error)
	Update(ctx context.Context, userID, postID int64, req ContentRequest) (Post, error)
	Delete(ctx context.Context, userID, postID int64) error
	ToggleLike(ctx context.Context, userID, postID int64) ([]Like, error)
	Comment(ctx context.Context, userID, postID int64, req ContentRequest) ([]Comment, error)
}

const (
	defaultMaxContentLength = 1000
	defaultListLimit        = 50
)

type service struct {
	cfg     Config
	repo    Repository
	authors Authors
	logger  *slog.Logger
}

// NewService constructs the feed service.
func NewService(cfg Config, repo Repository, authors Authors, logger *slog.Logger) Service {
	if cfg.MaxContentLength <= 0 {
		cfg.MaxContentLength = defaultMaxContentLength
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = defaultListLimit
	}
	return &service{
		cfg:     cfg,
		repo:    repo,
		authors: authors,
		logger:  logger.With("component", "post.service"),
	}
}

func (s *service) Create(ctx context.Context, authorID int64, req ContentRequest) (Post, error) {
	content, err := s.content(req.Content)
	if err != nil {
		return Post{}, err
	}
	name, err := s.authorName(ctx, authorID)
	if err != nil {
		return Post{}, err
	}
	created, err := s.repo.Create(ctx, Post{AuthorID: authorID, AuthorName: name, Content: content})
	if err != nil {
		return Post{}, apperrors.Wrap(CodeStorage, "failed to create post", err)
	}
	s.logger.Info("post created", "post_id", created.ID, "author_id", authorID)
	return created, nil
}

func (s *service) List(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 || limit > s.cfg.ListLimit {
		limit = s.cfg.ListLimit
	}
	posts, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(CodeStorage, "failed to list posts", err)
	}
	return posts, nil
}

// Update replaces the content of the caller's own post. Blank content
// leaves the post unchanged.
func (s *service) Update(ctx context.Context, userID, postID int64, req ContentRequest) (Post, error) {
	existing, err := s.owned(ctx, userID, postID, "update")
	if err != nil {
		return Post{}, err
	}
	if strings.TrimSpace(req.Content) == "" {
		return existing, nil
	}
	content, err := s.content(req.Content)
	if err != nil {
		return Post{}, err
	}
	updated, found, err := s.repo.UpdateContent(ctx, postID, content)
	if err != nil {
		return Post{}, apperrors.Wrap(CodeStorage, "failed to update post", err)
	}
	if !found {
		return Post{}, notFound()
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID, postID int64) error {
	if _, err := s.owned(ctx, userID, postID, "delete"); err != nil {
		return err
	}
	found, err := s.repo.Delete(ctx, postID)
	if err != nil {
		return apperrors.Wrap(CodeStorage, "failed to delete post", err)
	}
	if !found {
		return notFound()
	}
	s.logger.Info("post deleted", "post_id", postID, "author_id", userID)
	return nil
}

func (s *service) ToggleLike(ctx context.Context, userID, postID int64) ([]Like, error) {
	likes, found, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, apperrors.Wrap(CodeStorage, "failed to update likes", err)
	}
	if !found {
		return nil, notFound()
	}
	return likes, nil
}

func (s *service) Comment(ctx context.Context, userID, postID int64, req ContentRequest) ([]Comment, error) {
	content, err := s.content(req.Content)
	if err != nil {
		return nil, err
	}
	name, err := s.authorName(ctx, userID)
	if err != nil {
		return nil, err
	}
	comments, found, err := s.repo.AddComment(ctx, postID, Comment{UserID: userID, UserName: name, Content: content})
	if err != nil {
		return nil, apperrors.Wrap(CodeStorage, "failed to add comment", err)
	}
	if !found {
		return nil, notFound()
	}
	return comments, nil
}

func (s *service) owned(ctx context.Context, userID, postID int64, action string) (Post, error) {
	existing, found, err := s.repo.Get(ctx, postID)
	if err != nil {
		return Post{}, apperrors.Wrap(CodeStorage, "failed to load post", err)
	}
	if !found {
		return Post{}, notFound()
	}
	if existing.AuthorID != userID {
		return Post{}, apperrors.Wrap(CodeForbidden, fmt.Sprintf("only the author can %s this post", action), nil)
	}
	return existing, nil
}

func (s *service) content(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", apperrors.Wrap(CodeInvalidInput, "content cannot be empty", nil)
	}
	if utf8.RuneCountInString(content) > s.cfg.MaxContentLength {
		return "", apperrors.Wrap(CodeInvalidInput, fmt.Sprintf("content cannot exceed %d characters", s.cfg.MaxContentLength), nil)
	}
	return content, nil
}

func (s *service) authorName(ctx context.Context, userID int64) (string, error) {
	view, err := s.authors.Profile(ctx, userID)
	if err != nil {
		if apperrors.IsCode(err, "user_not_found") {
			return "", apperrors.Wrap(CodeAuthorNotFound, "author account not found", err)
		}
		return "", apperrors.Wrap(CodeStorage, "failed to load author", err)
	}
	return view.Name, nil
}

func notFound() error {
	return apperrors.Wrap(CodeNotFound, "post not found", nil)
}
