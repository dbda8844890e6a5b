package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/application/ticket/dto"
	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Principal
	ProjectName string
	ClientID    string
	Title       string
	Content     string
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	clientRepo  client.Repository
	assembler   *dto.Assembler
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	clientRepo client.Repository,
	assembler *dto.Assembler,
	txManager common.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		clientRepo:  clientRepo,
		assembler:   assembler,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute opens an unassigned ticket in a project the actor belongs to.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	cmd.ProjectName = project.LookupKey(cmd.ProjectName)
	uc.logger.Infow("executing create ticket use case",
		"project", cmd.ProjectName,
		"client_id", cmd.ClientID,
		"actor", cmd.Actor.Username)

	var (
		created *ticket.Ticket
		owner   *client.Client
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.projectRepo.GetByName(txCtx, cmd.ProjectName)
		if err != nil {
			return err
		}
		if p == nil {
			return errors.NewNotFoundError("project not found", cmd.ProjectName)
		}
		if err := common.RequireMembership(txCtx, uc.memberRepo, cmd.Actor, p.Name()); err != nil {
			return err
		}

		owner, err = uc.clientRepo.GetByID(txCtx, cmd.ClientID)
		if err != nil {
			return err
		}
		if owner == nil {
			return errors.NewNotFoundError("client not found", cmd.ClientID)
		}

		created, err = ticket.NewTicket(p.Name(), owner.ID(), cmd.Title, cmd.Content)
		if err != nil {
			return errors.NewValidationError("invalid ticket", err.Error())
		}
		return uc.ticketRepo.Create(txCtx, created)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create ticket", "project", cmd.ProjectName, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully", "id", created.ID(), "project", created.ProjectName())
	return uc.assembler.ToDTO(created, owner), nil
}
