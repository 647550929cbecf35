package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/blogserver/internal/logger"
	"github.com/dtroode/blogserver/internal/model"
)

// Blog provides CRUD over blog posts and resolves authors for read paths.
type Blog struct {
	blogStore model.BlogStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewBlog(
	blogStore model.BlogStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Blog {
	return &Blog{
		blogStore: blogStore,
		userStore: userStore,
		logger:    logger,
	}
}

// List returns all blogs with their authors populated. A blog whose author
// cannot be resolved is returned without one rather than failing the list.
func (s *Blog) List(ctx context.Context) ([]model.BlogWithAuthor, error) {
	blogs, err := s.blogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	authors := make(map[uuid.UUID]*model.PublicUser, len(blogs))
	result := make([]model.BlogWithAuthor, 0, len(blogs))
	for _, b := range blogs {
		author, ok := authors[b.AuthorID]
		if !ok {
			author = s.resolveAuthor(ctx, b.AuthorID)
			authors[b.AuthorID] = author
		}
		result = append(result, model.BlogWithAuthor{Blog: b, Author: author})
	}

	return result, nil
}

// Get returns a single blog with its author populated.
func (s *Blog) Get(ctx context.Context, id uuid.UUID) (model.BlogWithAuthor, error) {
	blog, err := s.blogStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.BlogWithAuthor{}, model.ErrNotFound
		}
		return model.BlogWithAuthor{}, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return model.BlogWithAuthor{Blog: blog, Author: s.resolveAuthor(ctx, blog.AuthorID)}, nil
}

// Create stores a new blog authored by the given user.
func (s *Blog) Create(ctx context.Context, params model.CreateBlogParams) (model.Blog, error) {
	now := time.Now()
	blog := model.Blog{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		AuthorID:    params.AuthorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.blogStore.Create(ctx, blog)
	if err != nil {
		s.logger.Error("Blog service: failed to create blog",
			"author_id", params.AuthorID,
			"error", err.Error())
		return model.Blog{}, fmt.Errorf("failed to create blog: %w", err)
	}

	s.logger.Info("Blog service: blog created",
		"blog_id", created.ID,
		"author_id", created.AuthorID)

	return created, nil
}

// Update applies a partial update. The target is resolved first so an
// unknown id fails with ErrNotFound before anything is written.
func (s *Blog) Update(ctx context.Context, params model.UpdateBlogParams) (model.Blog, error) {
	existing, err := s.blogStore.GetByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Blog{}, model.ErrNotFound
		}
		return model.Blog{}, fmt.Errorf("failed to get blog by id: %w", err)
	}

	if params.Title != nil {
		existing.Title = *params.Title
	}
	if params.Description != nil {
		existing.Description = *params.Description
	}

	updated, err := s.blogStore.Update(ctx, existing)
	if err != nil {
		return model.Blog{}, fmt.Errorf("failed to update blog: %w", err)
	}

	s.logger.Info("Blog service: blog updated",
		"blog_id", updated.ID)

	return updated, nil
}

// Delete removes a blog. An unknown id fails with ErrNotFound before any
// mutation.
func (s *Blog) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.blogStore.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get blog by id: %w", err)
	}

	if err := s.blogStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	s.logger.Info("Blog service: blog deleted",
		"blog_id", id)

	return nil
}

func (s *Blog) resolveAuthor(ctx context.Context, id uuid.UUID) *model.PublicUser {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("Blog service: failed to resolve author",
			"author_id", id,
			"error", err.Error())
		return nil
	}
	public := user.Public()
	return &public
}
