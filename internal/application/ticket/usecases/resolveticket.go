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

type ResolveTicketCommand struct {
	Actor    authorization.Principal
	TicketID string
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*dto.TicketDTO, error)
}

type ResolveTicketUseCase struct {
	ticketRepo ticket.Repository
	memberRepo project.MembershipRepository
	clientRepo client.Repository
	assembler  *dto.Assembler
	txManager  common.TransactionManager
	logger     logger.Interface
}

func NewResolveTicketUseCase(
	ticketRepo ticket.Repository,
	memberRepo project.MembershipRepository,
	clientRepo client.Repository,
	assembler *dto.Assembler,
	txManager common.TransactionManager,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		clientRepo: clientRepo,
		assembler:  assembler,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute marks the ticket Resolved whatever its current state.
func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing resolve ticket use case", "ticket_id", cmd.TicketID, "actor", cmd.Actor.Username)

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
		if err := t.Resolve(); err != nil {
			return errors.NewValidationError("cannot resolve ticket", err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		owner, err = uc.clientRepo.GetByID(txCtx, t.ClientID())
		return err
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to resolve ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to resolve ticket")
	}

	uc.logger.Infow("ticket resolved successfully", "ticket_id", t.ID())
	return uc.assembler.ToDTO(t, owner), nil
}
