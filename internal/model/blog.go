package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BlogStore defines persistence operations for blogs.
type BlogStore interface {
	List(ctx context.Context) ([]Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (Blog, error)
	Create(ctx context.Context, blog Blog) (Blog, error)
	Update(ctx context.Context, blog Blog) (Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Blog represents a blog post owned by a user.
type Blog struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    uuid.UUID `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogWithAuthor pairs a blog with its author's public projection.
// Author is nil when the author record can no longer be resolved.
type BlogWithAuthor struct {
	Blog
	Author *PublicUser `json:"author,omitempty"`
}

// CreateBlogParams carries the fields required to create a blog.
type CreateBlogParams struct {
	Title       string
	Description string
	AuthorID    uuid.UUID
}

// UpdateBlogParams carries a partial blog update. Nil fields are left
// unchanged.
type UpdateBlogParams struct {
	ID          uuid.UUID
	Title       *string
	Description *string
}
