package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/blogserver/internal/logger"
	"github.com/dtroode/blogserver/internal/model"
)

// The gates deliberately answer every failure with the same body so a caller
// cannot tell a missing header from an expired token or an unknown user.
const unauthenticatedMessage = "please register or sign in"

var errMalformedHeader = errors.New("malformed authorization header")

// Authenticate validates access tokens, resolves the email claim to a user
// and injects the user into the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	userStore      model.UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokenManager model.TokenManager,
	userStore model.UserStore,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle is the gin middleware entrypoint.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString, err := bearerToken(c.GetHeader("Authorization"))
	if err != nil {
		m.reject(c, err)
		return
	}

	claims, err := m.tokenManager.ParseAccessToken(tokenString)
	if err != nil {
		m.reject(c, err)
		return
	}

	user, err := m.userStore.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		m.reject(c, err)
		return
	}

	ctx := m.contextManager.SetUserToContext(c.Request.Context(), user)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func (m *Authenticate) reject(c *gin.Context, err error) {
	m.logger.Info("Authenticate middleware: request rejected",
		"path", c.Request.URL.Path,
		"error", err.Error())
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMessage})
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMalformedHeader
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errMalformedHeader
	}
	return parts[1], nil
}
