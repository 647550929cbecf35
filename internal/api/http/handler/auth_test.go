package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/blogserver/internal/api/http/context"
	"github.com/dtroode/blogserver/internal/model"
	"github.com/dtroode/blogserver/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Signup(ctx context.Context, params model.SignupParams) (model.PublicUser, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.PublicUser), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

func (m *authServiceMock) Logout(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *authServiceMock) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Signup", mock.Anything, model.SignupParams{Email: "a@b.com", Name: "Alice", Password: "secret1"}).
		Return(model.PublicUser{ID: uuid.New(), Email: "a@b.com", Name: "Alice"}, nil).Once()

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	engine := gin.New()
	engine.POST("/api/auth/signup", h.Signup)

	w := doJSON(t, engine, http.MethodPost, "/api/auth/signup",
		`{"email":"a@b.com","name":"Alice","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)
	// The projection never carries credential material.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "refresh_token")
}

func TestAuthHandler_Signup_ExistingEmail(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Signup", mock.Anything, mock.Anything).Return(model.PublicUser{}, model.ErrEmailTaken).Once()

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	engine := gin.New()
	engine.POST("/api/auth/signup", h.Signup)

	w := doJSON(t, engine, http.MethodPost, "/api/auth/signup",
		`{"email":"a@b.com","name":"Alice","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"user already exists"}`, w.Body.String())
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	svc := &authServiceMock{}

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	engine := gin.New()
	engine.POST("/api/auth/signup", h.Signup)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "bad email", body: `{"email":"nope","name":"Alice","password":"secret1"}`},
		{name: "missing name", body: `{"email":"a@b.com","password":"secret1"}`},
		{name: "garbled json", body: `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/api/auth/signup", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Created(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Login", mock.Anything, "a@b.com", "secret1").
		Return(model.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil).Once()

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	engine := gin.New()
	engine.POST("/api/auth/login", h.Login)

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"access_token":"access","refresh_token":"refresh"}`, w.Body.String())
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Login", mock.Anything, "a@b.com", "wrong1").
		Return(model.TokenPair{}, model.ErrInvalidCredentials).Once()

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	engine := gin.New()
	engine.POST("/api/auth/login", h.Login)

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.com","password":"wrong1"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"username or password is invalid"}`, w.Body.String())
}

func TestAuthHandler_Logout(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "a@b.com"}
	ctxMgr := httpctx.NewManager()

	svc := &authServiceMock{}
	svc.On("Logout", mock.Anything, user.ID).Return(nil).Once()

	h := NewAuth(svc, ctxMgr, testutil.MakeNoopLogger())
	engine := gin.New()
	engine.GET("/api/auth/logout", func(c *gin.Context) {
		c.Request = c.Request.WithContext(ctxMgr.SetUserToContext(c.Request.Context(), user))
	}, h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestAuthHandler_Refresh(t *testing.T) {
	userID := uuid.New()
	ctxMgr := httpctx.NewManager()

	svc := &authServiceMock{}
	svc.On("Refresh", mock.Anything, "refresh-old").
		Return(model.TokenPair{AccessToken: "access-new", RefreshToken: "refresh-new"}, nil).Once()

	h := NewAuth(svc, ctxMgr, testutil.MakeNoopLogger())
	engine := gin.New()
	engine.GET("/api/auth/refresh", func(c *gin.Context) {
		session := model.RefreshSession{UserID: userID, Token: "refresh-old"}
		c.Request = c.Request.WithContext(ctxMgr.SetRefreshSessionToContext(c.Request.Context(), session))
	}, h.Refresh)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/refresh", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"access-new","refresh_token":"refresh-new"}`, w.Body.String())
}

func TestAuthHandler_Refresh_UserGone(t *testing.T) {
	ctxMgr := httpctx.NewManager()

	svc := &authServiceMock{}
	svc.On("Refresh", mock.Anything, "refresh").
		Return(model.TokenPair{}, model.ErrAccessDenied).Once()

	h := NewAuth(svc, ctxMgr, testutil.MakeNoopLogger())
	engine := gin.New()
	engine.GET("/api/auth/refresh", func(c *gin.Context) {
		session := model.RefreshSession{UserID: uuid.New(), Token: "refresh"}
		c.Request = c.Request.WithContext(ctxMgr.SetRefreshSessionToContext(c.Request.Context(), session))
	}, h.Refresh)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/refresh", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"access denied"}`, w.Body.String())
}
