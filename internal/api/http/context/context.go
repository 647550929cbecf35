// Package context carries the authenticated identity through the request
// context between the gates and the handlers.
package context

import (
	"context"

	"github.com/dtroode/blogserver/internal/model"
)

type contextKey int

const (
	userKey contextKey = iota
	refreshSessionKey
)

// Manager implements model.ContextManager over plain request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetUserToContext returns a context carrying the resolved user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the resolved user set by the auth gate.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}

// SetRefreshSessionToContext returns a context carrying the decoded refresh
// claims and the raw token.
func (m *Manager) SetRefreshSessionToContext(ctx context.Context, session model.RefreshSession) context.Context {
	return context.WithValue(ctx, refreshSessionKey, session)
}

// GetRefreshSessionFromContext retrieves the session set by the refresh gate.
func (m *Manager) GetRefreshSessionFromContext(ctx context.Context) (model.RefreshSession, bool) {
	session, ok := ctx.Value(refreshSessionKey).(model.RefreshSession)
	return session, ok
}
