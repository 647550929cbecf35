package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/blogserver/internal/model"
)

var _ model.BlogStore = (*BlogRepository)(nil)

type BlogRepository struct {
	db *Connection
}

func NewBlogRepository(db *Connection) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	const query = `
        SELECT id, title, description, author_id, created_at, updated_at
        FROM blogs ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blogs: %w", err)
	}

	return blogs, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Blog, error) {
	const query = `
        SELECT id, title, description, author_id, created_at, updated_at
        FROM blogs WHERE id = $1
    `
	var b model.Blog
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Blog{}, model.ErrNotFound
		}
		return model.Blog{}, fmt.Errorf("failed to get blog by id: %w", err)
	}
	return b, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog model.Blog) (model.Blog, error) {
	const query = `
        INSERT INTO blogs (id, title, description, author_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, title, description, author_id, created_at, updated_at
    `
	var saved model.Blog
	err := r.db.QueryRow(ctx, query,
		blog.ID, blog.Title, blog.Description, blog.AuthorID, blog.CreatedAt, blog.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Title, &saved.Description, &saved.AuthorID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Blog{}, fmt.Errorf("failed to create blog: %w", err)
	}
	return saved, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog model.Blog) (model.Blog, error) {
	const query = `
        UPDATE blogs SET title = $2, description = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING id, title, description, author_id, created_at, updated_at
    `
	var saved model.Blog
	err := r.db.QueryRow(ctx, query, blog.ID, blog.Title, blog.Description).Scan(
		&saved.ID, &saved.Title, &saved.Description, &saved.AuthorID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Blog{}, model.ErrNotFound
		}
		return model.Blog{}, fmt.Errorf("failed to update blog: %w", err)
	}
	return saved, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM blogs WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
