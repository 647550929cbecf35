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

// AuthService defines registration, login, logout and refresh operations.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.PublicUser, error)
	Login(ctx context.Context, email, password string) (model.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Signup registers a new user and returns its public projection.
func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}
	if err := validation.Validate(req); err != nil {
		handleError(c, err)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), model.SignupParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and returns a fresh token pair.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}
	if err := validation.Validate(req); err != nil {
		handleError(c, err)
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login rejected",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pair)
}

// Logout clears the current user's refresh token.
func (h *Auth) Logout(c *gin.Context) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please register or sign in"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), user.ID); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Refresh issues a new token pair for the refresh session attached by the
// refresh gate.
func (h *Auth) Refresh(c *gin.Context) {
	session, ok := h.contextManager.GetRefreshSessionFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please register or sign in"})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), session.Token)
	if err != nil {
		h.logger.Info("Auth handler: refresh rejected",
			"user_id", session.UserID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}
