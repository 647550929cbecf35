package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/blogserver/internal/logger"
	"github.com/dtroode/blogserver/internal/model"
)

// RefreshGate is the gate variant for the refresh endpoint. It verifies a
// refresh-scoped token and attaches the decoded claims plus the raw token to
// the request context. Unlike Authenticate it performs no user lookup.
type RefreshGate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRefreshGate creates a new RefreshGate middleware instance.
func NewRefreshGate(
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *RefreshGate {
	return &RefreshGate{
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle is the gin middleware entrypoint.
func (m *RefreshGate) Handle(c *gin.Context) {
	tokenString, err := bearerToken(c.GetHeader("Authorization"))
	if err != nil {
		m.reject(c, err)
		return
	}

	userID, err := m.tokenManager.ParseRefreshToken(tokenString)
	if err != nil {
		m.reject(c, err)
		return
	}

	session := model.RefreshSession{UserID: userID, Token: tokenString}
	ctx := m.contextManager.SetRefreshSessionToContext(c.Request.Context(), session)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func (m *RefreshGate) reject(c *gin.Context, err error) {
	m.logger.Info("RefreshGate middleware: request rejected",
		"path", c.Request.URL.Path,
		"error", err.Error())
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMessage})
}
