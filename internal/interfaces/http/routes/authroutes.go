package routes

import (
	"github.com/gin-gonic/gin"

	"itm/internal/interfaces/http/handlers"
	"itm/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for the credential routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimitMiddleware
}

// SetupAuthRoutes registers the unauthenticated /register and /login routes.
func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	engine.POST("/register", config.RateLimiter.Limit("register"), config.AuthHandler.Register)
	engine.POST("/login", config.RateLimiter.Limit("login"), config.AuthHandler.Login)
}
