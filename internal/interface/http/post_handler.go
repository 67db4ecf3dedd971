package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astro-profile/internal/domain/auth"
	"github.com/yanqian/astro-profile/internal/domain/post"
	apperrors "github.com/yanqian/astro-profile/pkg/errors"
)

// PostHandler serves the community feed.
type PostHandler struct {
	svc    post.Service
	logger *slog.Logger
}

// NewPostHandler constructs the feed handler.
func NewPostHandler(svc post.Service, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, logger: logger.With("component", "http.posts")}
}

// List returns the feed, newest first.
func (h *PostHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be an integer", err))
		return
	}
	posts, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, postError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Create publishes a post for the authenticated user.
func (h *PostHandler) Create(c *gin.Context) {
	claims, req, ok := bindContent(c)
	if !ok {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, postError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits a post owned by the authenticated user.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	claims, req, ok := bindContent(c)
	if !ok {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), claims.UserID, id, req)
	if err != nil {
		abortWithError(c, postError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a post owned by the authenticated user.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		abortWithError(c, postError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post removed"})
}

// ToggleLike likes the post, or unlikes it when already liked.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	likes, err := h.svc.ToggleLike(c.Request.Context(), claims.UserID, id)
	if err != nil {
		abortWithError(c, postError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// Comment appends a comment to the post.
func (h *PostHandler) Comment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	claims, req, ok := bindContent(c)
	if !ok {
		return
	}
	comments, err := h.svc.Comment(c.Request.Context(), claims.UserID, id, req)
	if err != nil {
		abortWithError(c, postError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comments": comments})
}

func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "post id must be a positive integer", err))
		return 0, false
	}
	return id, true
}

func bindContent(c *gin.Context) (auth.Claims, post.ContentRequest, bool) {
	claims, ok := requireClaims(c)
	if !ok {
		return auth.Claims{}, post.ContentRequest{}, false
	}
	var req post.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return auth.Claims{}, post.ContentRequest{}, false
	}
	return claims, req, true
}

func requireClaims(c *gin.Context) (auth.Claims, bool) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing credentials", nil))
		return auth.Claims{}, false
	}
	return claims, true
}

// postError maps on the outermost code: author lookups wrap auth errors.
func postError(err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, post.CodeInvalidInput):
		return NewHTTPError(http.StatusBadRequest, post.CodeInvalidInput, appMessage(err), err)
	case apperrors.IsCode(err, post.CodeNotFound):
		return NewHTTPError(http.StatusNotFound, post.CodeNotFound, appMessage(err), err)
	case apperrors.IsCode(err, post.CodeForbidden):
		return NewHTTPError(http.StatusForbidden, post.CodeForbidden, appMessage(err), err)
	case apperrors.IsCode(err, post.CodeAuthorNotFound):
		return NewHTTPError(http.StatusUnauthorized, post.CodeAuthorNotFound, "author account not found", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, post.CodeStorage, "failed to process post", err)
	}
}
