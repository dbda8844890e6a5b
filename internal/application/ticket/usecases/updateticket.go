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

type UpdateTicketCommand struct {
	Actor    authorization.Principal
	TicketID string
	Title    string
	Content  string
	ClientID string
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	memberRepo project.MembershipRepository
	clientRepo client.Repository
	assembler  *dto.Assembler
	txManager  common.TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	memberRepo project.MembershipRepository,
	clientRepo client.Repository,
	assembler *dto.Assembler,
	txManager common.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		clientRepo: clientRepo,
		assembler:  assembler,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor", cmd.Actor.Username)

	var (
		t     *ticket.Ticket
		owner *client.Client
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = loadTicketForMember(txCtx, uc.ticketRepo, uc.memberRepo, cmd.Actor, cmd.TicketID)
		if err != nil {
			return err
		}

		owner, err = uc.clientRepo.GetByID(txCtx, cmd.ClientID)
		if err != nil {
			return err
		}
		if owner == nil {
			return errors.NewNotFoundError("client not found", cmd.ClientID)
		}

		if err := t.Rewrite(cmd.Title, cmd.Content, owner.ID()); err != nil {
			return errors.NewValidationError("invalid ticket", err.Error())
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "client_id", owner.ID())
	return uc.assembler.ToDTO(t, owner), nil
}
