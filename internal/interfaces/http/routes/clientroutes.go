package routes

import (
	"github.com/gin-gonic/gin"

	"itm/internal/infrastructure/permission"
	clienthandlers "itm/internal/interfaces/http/handlers/client"
	"itm/internal/interfaces/http/middleware"
)

type ClientRouteConfig struct {
	ClientHandler        *clienthandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupClientRoutes registers the client registry. Reads are open to any
// authenticated user, writes need the admin role.
func SetupClientRoutes(engine *gin.Engine, config *ClientRouteConfig) {
	perm := config.PermissionMiddleware

	clients := engine.Group("/clients")
	clients.Use(config.AuthMiddleware.RequireAuth())
	{
		clients.GET("",
			perm.RequirePermission(permission.ResourceClient, permission.ActionRead),
			config.ClientHandler.ListClients)
		clients.POST("",
			perm.RequirePermission(permission.ResourceClient, permission.ActionCreate),
			config.ClientHandler.CreateClient)
		clients.PUT("/:client",
			perm.RequirePermission(permission.ResourceClient, permission.ActionUpdate),
			config.ClientHandler.UpdateClient)
		clients.DELETE("/:client",
			perm.RequirePermission(permission.ResourceClient, permission.ActionDelete),
			config.ClientHandler.DeleteClient)
	}
}
