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

// Auth orchestrates signup, login, logout and refresh over the user store,
// the password hasher and the token manager.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	hasher       model.Hasher
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	hasher model.Hasher,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		hasher:       hasher,
		logger:       logger,
	}
}

// Signup registers a new user. The returned projection never contains the
// password hash.
func (a *Auth) Signup(ctx context.Context, params model.SignupParams) (model.PublicUser, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.PublicUser{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: hash,
		RefreshToken: "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.PublicUser{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", params.Email,
		"user_id", created.ID)

	return created.Public(), nil
}

// Login verifies credentials and issues a fresh token pair. A missing user
// and a failed password compare are kept distinct internally but both wrap
// ErrInvalidCredentials so the boundary presents a uniform rejection.
func (a *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, fmt.Errorf("no user for email: %w", model.ErrInvalidCredentials)
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Compare(password, user.PasswordHash) {
		return model.TokenPair{}, fmt.Errorf("password mismatch: %w", model.ErrInvalidCredentials)
	}

	pair, err := a.issue(ctx, user)
	if err != nil {
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", email,
		"user_id", user.ID)

	return pair, nil
}

// Logout clears the user's refresh token slot. Logging out a user who is
// already logged out, or who no longer exists, is a no-op.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID) error {
	err := a.userStore.UpdateRefreshToken(ctx, userID, "")
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to clear refresh token",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID)

	return nil
}

// Refresh verifies a refresh token and re-issues a pair, exactly as a fresh
// login would. The presented token is not compared against the stored slot:
// any unexpired, correctly signed refresh token for an existing user is
// accepted even after the slot was overwritten by a newer login.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	userID, err := a.tokenManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to parse refresh token: %w", err)
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: refresh for unresolved user",
			"user_id", userID)
		return model.TokenPair{}, fmt.Errorf("user no longer exists: %w", model.ErrAccessDenied)
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	pair, err := a.issue(ctx, user)
	if err != nil {
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: tokens refreshed",
		"user_id", user.ID)

	return pair, nil
}

// issue mints a new pair and overwrites the single refresh token slot.
// Concurrent logins for the same user race on the slot; the last write wins.
func (a *Auth) issue(ctx context.Context, user model.User) (model.TokenPair, error) {
	access, err := a.tokenManager.GenerateAccessToken(user)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := a.tokenManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := a.userStore.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
