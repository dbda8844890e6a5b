package http

import (
	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/domain/user"
	"itm/internal/infrastructure/repository"
	"itm/internal/shared/db"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo    user.Repository
	clientRepo  client.Repository
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	ticketRepo  ticket.Repository
	txManager   *db.TransactionManager
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:    repository.NewUserRepository(c.db, c.log),
		clientRepo:  repository.NewClientRepository(c.db, c.log),
		projectRepo: repository.NewProjectRepository(c.db, c.log),
		memberRepo:  repository.NewMembershipRepository(c.db, c.log),
		ticketRepo:  repository.NewTicketRepository(c.db, c.log),
		txManager:   db.NewTransactionManager(c.db),
	}
}
