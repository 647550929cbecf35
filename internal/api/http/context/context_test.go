package context

import (
	stdcontext "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/blogserver/internal/model"
)

func TestManager_UserRoundtrip(t *testing.T) {
	m := NewManager()
	user := model.User{ID: uuid.New(), Email: "a@b.com"}

	ctx := m.SetUserToContext(stdcontext.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_UserAbsent(t *testing.T) {
	m := NewManager()

	_, ok := m.GetUserFromContext(stdcontext.Background())
	assert.False(t, ok)
}

func TestManager_RefreshSessionRoundtrip(t *testing.T) {
	m := NewManager()
	session := model.RefreshSession{UserID: uuid.New(), Token: "refresh"}

	ctx := m.SetRefreshSessionToContext(stdcontext.Background(), session)

	got, ok := m.GetRefreshSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestManager_RefreshSessionAbsent(t *testing.T) {
	m := NewManager()

	_, ok := m.GetRefreshSessionFromContext(stdcontext.Background())
	assert.False(t, ok)
}
