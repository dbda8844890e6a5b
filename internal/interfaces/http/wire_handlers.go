package http

import (
	"itm/internal/interfaces/http/handlers"
	clientHandlers "itm/internal/interfaces/http/handlers/client"
	projectHandlers "itm/internal/interfaces/http/handlers/project"
	ticketHandlers "itm/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	authHandler   *handlers.AuthHandler
	userHandler   *handlers.UserHandler
	healthHandler *handlers.HealthHandler

	clientHandler  *clientHandlers.Handler
	projectHandler *projectHandlers.Handler
	ticketHandler  *ticketHandlers.Handler
}

func (c *Container) initHandlers() {
	u := c.ucs
	c.hdlrs = &allHandlers{
		authHandler:   handlers.NewAuthHandler(u.registerUC, u.loginUC, c.log),
		userHandler:   handlers.NewUserHandler(u.updateProfileUC, u.deleteUserUC, c.log),
		healthHandler: handlers.NewHealthHandler(c.db),

		clientHandler: clientHandlers.NewHandler(
			u.createClientUC, u.updateClientUC, u.deleteClientUC, u.listClientsUC, c.log,
		),
		projectHandler: projectHandlers.NewHandler(
			u.createProjectUC, u.renameProjectUC, u.deleteProjectUC,
			u.addMemberUC, u.removeMemberUC, u.listProjectsUC, u.getProjectDetailUC, c.log,
		),
		ticketHandler: ticketHandlers.NewHandler(
			u.createTicketUC, u.assignSelfUC, u.assignTicketUC,
			u.resolveTicketUC, u.updateTicketUC, u.listTicketsUC, c.log,
		),
	}
}
