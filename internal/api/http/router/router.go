// Package router wires handlers and middleware into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/blogserver/internal/api/http/handler"
	"github.com/dtroode/blogserver/internal/api/http/middleware"
	"github.com/dtroode/blogserver/internal/logger"
	"github.com/dtroode/blogserver/internal/model"
)

// Router builds the HTTP routing table for the blog API.
type Router struct {
	authService    handler.AuthService
	blogService    handler.BlogService
	tokenManager   model.TokenManager
	userStore      model.UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	blogService handler.BlogService,
	tokenManager model.TokenManager,
	userStore model.UserStore,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		blogService:    blogService,
		tokenManager:   tokenManager,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register sets up middleware and routes and returns the engine.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.userStore, r.contextManager, r.logger)
	refreshGate := middleware.NewRefreshGate(r.tokenManager, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	blogHandler := handler.NewBlog(r.blogService, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/logout", authenticate.Handle, authHandler.Logout)
	auth.GET("/refresh", refreshGate.Handle, authHandler.Refresh)

	blogs := api.Group("/blogs")
	blogs.GET("", blogHandler.List)
	blogs.GET("/:id", blogHandler.Get)
	blogs.POST("", authenticate.Handle, blogHandler.Create)
	blogs.PUT("/:id", authenticate.Handle, blogHandler.Update)
	blogs.DELETE("/:id", authenticate.Handle, blogHandler.Delete)

	return engine
}
