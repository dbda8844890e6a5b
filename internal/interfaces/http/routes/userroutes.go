package routes

import (
	"github.com/gin-gonic/gin"

	"itm/internal/infrastructure/permission"
	"itm/internal/interfaces/http/handlers"
	"itm/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user routes
func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.PUT("", config.UserHandler.UpdateCurrentUser)
		users.DELETE("/:user",
			config.PermissionMiddleware.RequirePermission(permission.ResourceUser, permission.ActionDelete),
			config.UserHandler.DeleteUser)
	}
}
