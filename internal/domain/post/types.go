package post

import "time"

// Config bounds post content and feed size.
type Config struct {
	MaxContentLength int
	ListLimit        int
}

// Post is a community feed entry with its likes and comments inlined.
type Post struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Likes      []Like    `json:"likes"`
	Comments   []Comment `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Like records that a user liked a post. A user likes a post at most once.
type Like struct {
	UserID int64 `json:"userId"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContentRequest carries the text of a new post, an edit or a comment.
type ContentRequest struct {
	Content string `json:"content"`
}
