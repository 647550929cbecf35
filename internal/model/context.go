package model

import (
	"context"

	"github.com/google/uuid"
)

// RefreshSession is what the refresh gate attaches to the request context:
// the decoded user ID and the raw token it was decoded from. No user lookup
// happens at the gate for refresh requests.
type RefreshSession struct {
	UserID uuid.UUID
	Token  string
}

type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
	SetRefreshSessionToContext(ctx context.Context, session RefreshSession) context.Context
	GetRefreshSessionFromContext(ctx context.Context) (RefreshSession, bool)
}
