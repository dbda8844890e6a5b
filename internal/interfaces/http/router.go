package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"itm/internal/interfaces/http/middleware"
	"itm/internal/interfaces/http/routes"

	_ "itm/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	c *Container
}

func NewRouter(c *Container) *Router {
	return &Router{c: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.c
	engine := c.engine

	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	engine.GET("/version", c.hdlrs.healthHandler.Version)
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		RateLimiter: c.rateLimiter,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:          c.hdlrs.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupClientRoutes(engine, &routes.ClientRouteConfig{
		ClientHandler:        c.hdlrs.clientHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupProjectRoutes(engine, &routes.ProjectRouteConfig{
		ProjectHandler: c.hdlrs.projectHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.c.engine
}
