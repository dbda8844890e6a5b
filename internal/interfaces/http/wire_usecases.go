package http

import (
	clientUsecases "itm/internal/application/client/usecases"
	projectUsecases "itm/internal/application/project/usecases"
	ticketdto "itm/internal/application/ticket/dto"
	ticketUsecases "itm/internal/application/ticket/usecases"
	userUsecases "itm/internal/application/user/usecases"
	"itm/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User & Auth
	registerUC      *userUsecases.RegisterUseCase
	loginUC         *userUsecases.LoginUseCase
	updateProfileUC *userUsecases.UpdateProfileUseCase
	deleteUserUC    *userUsecases.DeleteUserUseCase

	// Client
	createClientUC *clientUsecases.CreateClientUseCase
	updateClientUC *clientUsecases.UpdateClientUseCase
	deleteClientUC *clientUsecases.DeleteClientUseCase
	listClientsUC  *clientUsecases.ListClientsUseCase

	// Project
	createProjectUC    *projectUsecases.CreateProjectUseCase
	renameProjectUC    *projectUsecases.RenameProjectUseCase
	deleteProjectUC    *projectUsecases.DeleteProjectUseCase
	addMemberUC        *projectUsecases.AddMemberUseCase
	removeMemberUC     *projectUsecases.RemoveMemberUseCase
	listProjectsUC     *projectUsecases.ListProjectsUseCase
	getProjectDetailUC *projectUsecases.GetProjectDetailUseCase

	// Ticket
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	assignSelfUC    *ticketUsecases.AssignSelfUseCase
	assignTicketUC  *ticketUsecases.AssignTicketUseCase
	resolveTicketUC *ticketUsecases.ResolveTicketUseCase
	updateTicketUC  *ticketUsecases.UpdateTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	assembler := ticketdto.NewAssembler(markdown.NewMarkdownService())
	remover := projectUsecases.NewProjectRemover(r.projectRepo, r.memberRepo, r.ticketRepo, log)

	c.ucs = &allUseCases{
		registerUC:      userUsecases.NewRegisterUseCase(r.userRepo, c.hasher, log),
		loginUC:         userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, log),
		updateProfileUC: userUsecases.NewUpdateProfileUseCase(r.userRepo, c.hasher, log),
		deleteUserUC: userUsecases.NewDeleteUserUseCase(
			r.userRepo, r.projectRepo, r.memberRepo, r.ticketRepo, remover, r.txManager, log,
		),

		createClientUC: clientUsecases.NewCreateClientUseCase(r.clientRepo, log),
		updateClientUC: clientUsecases.NewUpdateClientUseCase(r.clientRepo, log),
		deleteClientUC: clientUsecases.NewDeleteClientUseCase(r.clientRepo, r.ticketRepo, r.txManager, log),
		listClientsUC:  clientUsecases.NewListClientsUseCase(r.clientRepo, log),

		createProjectUC: projectUsecases.NewCreateProjectUseCase(r.projectRepo, r.memberRepo, r.userRepo, r.txManager, log),
		renameProjectUC: projectUsecases.NewRenameProjectUseCase(r.projectRepo, r.memberRepo, r.ticketRepo, r.txManager, log),
		deleteProjectUC: projectUsecases.NewDeleteProjectUseCase(r.projectRepo, remover, r.txManager, log),
		addMemberUC:     projectUsecases.NewAddMemberUseCase(r.projectRepo, r.memberRepo, r.userRepo, r.txManager, log),
		removeMemberUC:  projectUsecases.NewRemoveMemberUseCase(r.projectRepo, r.memberRepo, r.userRepo, r.txManager, log),
		listProjectsUC:  projectUsecases.NewListProjectsUseCase(r.projectRepo, log),
		getProjectDetailUC: projectUsecases.NewGetProjectDetailUseCase(
			r.projectRepo, r.memberRepo, r.userRepo, r.ticketRepo, r.clientRepo, assembler, log,
		),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(
			r.ticketRepo, r.projectRepo, r.memberRepo, r.clientRepo, assembler, r.txManager, log,
		),
		assignSelfUC: ticketUsecases.NewAssignSelfUseCase(r.ticketRepo, r.memberRepo, r.clientRepo, assembler, r.txManager, log),
		assignTicketUC: ticketUsecases.NewAssignTicketUseCase(
			r.ticketRepo, r.memberRepo, r.userRepo, r.clientRepo, assembler, r.txManager, log,
		),
		resolveTicketUC: ticketUsecases.NewResolveTicketUseCase(r.ticketRepo, r.memberRepo, r.clientRepo, assembler, r.txManager, log),
		updateTicketUC:  ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.memberRepo, r.clientRepo, assembler, r.txManager, log),
		listTicketsUC:   ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.clientRepo, assembler, log),
	}
}
