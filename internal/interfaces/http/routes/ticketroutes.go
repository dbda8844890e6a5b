package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "itm/internal/interfaces/http/handlers/ticket"
	"itm/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	h := config.TicketHandler

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", h.ListTickets)
		tickets.POST("", h.CreateTicket)

		// Workflow actions carry the ticket id in the body
		tickets.POST("/assign", h.AssignSelf)
		tickets.POST("/assignto", h.AssignTo)
		tickets.POST("/resolve", h.Resolve)

		tickets.PUT("/:ticket", h.UpdateTicket)
	}
}
