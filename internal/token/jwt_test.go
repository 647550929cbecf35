package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/blogserver/internal/model"
)

func newTestJWT() *JWT {
	return &JWT{
		accessSecret:  "accesssecret",
		refreshSecret: "refreshsecret",
		accessTTL:     15 * time.Minute,
		refreshTTL:    720 * time.Hour,
	}
}

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := newTestJWT()
	user := model.User{ID: uuid.New(), Email: "a@b.com"}

	access, err := j.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := newTestJWT()
	u := uuid.New()

	refresh, err := j.GenerateRefreshToken(u)
	require.NoError(t, err)

	got, err := j.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_ScopesNotInterchangeable(t *testing.T) {
	j := newTestJWT()
	user := model.User{ID: uuid.New(), Email: "a@b.com"}

	access, err := j.GenerateAccessToken(user)
	require.NoError(t, err)
	refresh, err := j.GenerateRefreshToken(user.ID)
	require.NoError(t, err)

	_, err = j.ParseRefreshToken(access)
	require.ErrorIs(t, err, model.ErrTokenInvalid)

	_, err = j.ParseAccessToken(refresh)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_TokenType_CheckedEvenWithSharedSecret(t *testing.T) {
	j := &JWT{
		accessSecret:  "shared",
		refreshSecret: "shared",
		accessTTL:     time.Minute,
		refreshTTL:    time.Minute,
	}
	u := uuid.New()

	refresh, err := j.GenerateRefreshToken(u)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(refresh)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := &JWT{
		accessSecret:  "accesssecret",
		refreshSecret: "refreshsecret",
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}
	user := model.User{ID: uuid.New(), Email: "a@b.com"}

	access, err := j.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_MalformedToken(t *testing.T) {
	j := newTestJWT()

	_, err := j.ParseAccessToken("not a token")
	require.ErrorIs(t, err, model.ErrTokenMalformed)

	_, err = j.ParseRefreshToken("")
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := newTestJWT()
	other := &JWT{
		accessSecret:  "othersecret",
		refreshSecret: "othersecret",
		accessTTL:     time.Minute,
		refreshTTL:    time.Minute,
	}
	user := model.User{ID: uuid.New(), Email: "a@b.com"}

	access, err := j.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = other.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}
