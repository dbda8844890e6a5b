package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "itm/internal/interfaces/http/handlers/project"
	"itm/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler *projecthandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProjectRoutes registers project and membership routes. Project admin
// checks happen in the use cases since they depend on the stored project.
func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	h := config.ProjectHandler

	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)

		// Membership
		projects.POST("/users", h.AddMember)
		projects.DELETE("/:project/users/:user", h.RemoveMember)

		projects.GET("/:project", h.GetProject)
		projects.PUT("/:project", h.RenameProject)
		projects.DELETE("/:project", h.DeleteProject)
	}
}
