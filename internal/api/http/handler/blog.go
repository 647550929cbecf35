package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/blogserver/internal/logger"
	"github.com/dtroode/blogserver/internal/model"
	"github.com/dtroode/blogserver/internal/validation"
)

// BlogService defines blog CRUD operations.
type BlogService interface {
	List(ctx context.Context) ([]model.BlogWithAuthor, error)
	Get(ctx context.Context, id uuid.UUID) (model.BlogWithAuthor, error)
	Create(ctx context.Context, params model.CreateBlogParams) (model.Blog, error)
	Update(ctx context.Context, params model.UpdateBlogParams) (model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Blog handles HTTP endpoints for blog CRUD.
type Blog struct {
	blogService    BlogService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewBlog creates a new Blog handler.
func NewBlog(blogService BlogService, contextManager model.ContextManager, logger *logger.Logger) *Blog {
	return &Blog{
		blogService:    blogService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createBlogRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateBlogRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

// List returns all blogs with populated authors.
func (h *Blog) List(c *gin.Context) {
	blogs, err := h.blogService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Blog handler: list failed",
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// Get returns a single blog with its populated author.
func (h *Blog) Get(c *gin.Context) {
	id, err := blogID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	blog, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// Create stores a new blog authored by the current user.
func (h *Blog) Create(c *gin.Context) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please register or sign in"})
		return
	}

	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}
	if err := validation.Validate(req); err != nil {
		handleError(c, err)
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), model.CreateBlogParams{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    user.ID,
	})
	if err != nil {
		h.logger.Error("Blog handler: create failed",
			"author_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// Update applies a partial update to an existing blog.
func (h *Blog) Update(c *gin.Context) {
	id, err := blogID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}
	if err := validation.Validate(req); err != nil {
		handleError(c, err)
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), model.UpdateBlogParams{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// Delete removes a blog.
func (h *Blog) Delete(c *gin.Context) {
	id, err := blogID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "blog deleted"})
}

// blogID parses the :id path parameter. An unparseable id reads as an
// unknown blog rather than leaking parse detail.
func blogID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, model.ErrNotFound
	}
	return id, nil
}
