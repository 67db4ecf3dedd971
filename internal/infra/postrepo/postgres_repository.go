package postrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/astro-profile/internal/domain/post"
)

const foreignKeyViolation = "23503"

// PostgresRepository stores the feed across posts, post_likes and
// post_comments.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const postColumns = `id, author_id, author_name, content, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, p post.Post) (post.Post, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (author_id, author_name, content)
		VALUES ($1, $2, $3)
		RETURNING `+postColumns,
		p.AuthorID, p.AuthorName, p.Content,
	)
	return scanPost(row)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (post.Post, bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	return r.one(ctx, row)
}

// List returns up to limit posts, newest first, with likes and comments.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]post.Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]post.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attach(ctx, r.pool, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id int64, content string) (post.Post, bool, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+postColumns,
		id, content,
	)
	return r.one(ctx, row)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) ToggleLike(ctx context.Context, postID, userID int64) ([]post.Like, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked int64
	if err := tx.QueryRow(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return nil, false, err
	}
	if tag.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx, `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`, postID, userID); err != nil {
			return nil, false, err
		}
	}
	likes, err := loadLikes(ctx, tx, []int64{postID})
	if err != nil {
		return nil, false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return nonNilLikes(likes[postID]), true, nil
}

func (r *PostgresRepository) AddComment(ctx context.Context, postID int64, c post.Comment) ([]post.Comment, bool, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO post_comments (post_id, user_id, user_name, content)
		VALUES ($1, $2, $3, $4)
	`, postID, c.UserID, c.UserName, c.Content)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, false, nil
		}
		return nil, false, err
	}
	comments, err := loadComments(ctx, r.pool, []int64{postID})
	if err != nil {
		return nil, false, err
	}
	return nonNilComments(comments[postID]), true, nil
}

func (r *PostgresRepository) one(ctx context.Context, row pgx.Row) (post.Post, bool, error) {
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, false, nil
		}
		return post.Post{}, false, err
	}
	posts := []post.Post{p}
	if err := r.attach(ctx, r.pool, posts); err != nil {
		return post.Post{}, false, err
	}
	return posts[0], true, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PostgresRepository) attach(ctx context.Context, q querier, posts []post.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	likes, err := loadLikes(ctx, q, ids)
	if err != nil {
		return err
	}
	comments, err := loadComments(ctx, q, ids)
	if err != nil {
		return err
	}
	for i := range posts {
		posts[i].Likes = nonNilLikes(likes[posts[i].ID])
		posts[i].Comments = nonNilComments(comments[posts[i].ID])
	}
	return nil
}

func loadLikes(ctx context.Context, q querier, ids []int64) (map[int64][]post.Like, error) {
	rows, err := q.Query(ctx, `
		SELECT post_id, user_id FROM post_likes
		WHERE post_id = ANY($1)
		ORDER BY created_at, user_id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[int64][]post.Like, len(ids))
	for rows.Next() {
		var postID int64
		var like post.Like
		if err := rows.Scan(&postID, &like.UserID); err != nil {
			return nil, err
		}
		out[postID] = append(out[postID], like)
	}
	return out, rows.Err()
}

func loadComments(ctx context.Context, q querier, ids []int64) (map[int64][]post.Comment, error) {
	rows, err := q.Query(ctx, `
		SELECT post_id, id, user_id, user_name, content, created_at FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY created_at, id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[int64][]post.Comment, len(ids))
	for rows.Next() {
		var (
			postID  int64
			c       post.Comment
			created time.Time
		)
		if err := rows.Scan(&postID, &c.ID, &c.UserID, &c.UserName, &c.Content, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = created.UTC()
		out[postID] = append(out[postID], c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (post.Post, error) {
	var (
		p                post.Post
		created, updated time.Time
	)
	if err := row.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Content, &created, &updated); err != nil {
		return post.Post{}, err
	}
	p.CreatedAt = created.UTC()
	p.UpdatedAt = updated.UTC()
	p.Likes = []post.Like{}
	p.Comments = []post.Comment{}
	return p, nil
}

func nonNilLikes(likes []post.Like) []post.Like {
	if likes == nil {
		return []post.Like{}
	}
	return likes
}

func nonNilComments(comments []post.Comment) []post.Comment {
	if comments == nil {
		return []post.Comment{}
	}
	return comments
}

var _ post.Repository = (*PostgresRepository)(nil)
