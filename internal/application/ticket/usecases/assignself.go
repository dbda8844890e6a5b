package usecases

import (
	"context"
	stderrors "errors"

	"itm/internal/application/common"
	"itm/internal/application/ticket/dto"
	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type AssignSelfCommand struct {
	Actor    authorization.Principal
	TicketID string
}

type AssignSelfExecutor interface {
	Execute(ctx context.Context, cmd AssignSelfCommand) (*dto.TicketDTO, error)
}

type AssignSelfUseCase struct {
	ticketRepo ticket.Repository
	memberRepo project.MembershipRepository
	clientRepo client.Repository
	assembler  *dto.Assembler
	txManager  common.TransactionManager
	logger     logger.Interface
}

func NewAssignSelfUseCase(
	ticketRepo ticket.Repository,
	memberRepo project.MembershipRepository,
	clientRepo client.Repository,
	assembler *dto.Assembler,
	txManager common.TransactionManager,
	logger logger.Interface,
) *AssignSelfUseCase {
	return &AssignSelfUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		clientRepo: clientRepo,
		assembler:  assembler,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute claims an unassigned ticket for the actor. The claim is a
// conditional update, so of two concurrent callers only one wins.
func (uc *AssignSelfUseCase) Execute(ctx context.Context, cmd AssignSelfCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign self use case", "ticket_id", cmd.TicketID, "actor", cmd.Actor.Username)

	var (
		claimed *ticket.Ticket
		owner   *client.Client
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := loadTicketForMember(txCtx, uc.ticketRepo, uc.memberRepo, cmd.Actor, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := t.AssignSelf(cmd.Actor.Username); err != nil {
			if stderrors.Is(err, ticket.ErrAlreadyAssigned) {
				return errors.NewAlreadyAssignedError("ticket is already assigned", *t.AssigneeUsername())
			}
			return errors.NewValidationError("invalid assignee", err.Error())
		}

		// The row may have been claimed since it was read.
		if err := uc.ticketRepo.ClaimUnassigned(txCtx, t.ID(), cmd.Actor.Username); err != nil {
			if stderrors.Is(err, ticket.ErrAlreadyAssigned) {
				return errors.NewAlreadyAssignedError("ticket is already assigned")
			}
			return err
		}

		if claimed, err = uc.ticketRepo.GetByID(txCtx, t.ID()); err != nil {
			return err
		}
		if claimed == nil {
			return errors.NewNotFoundError("ticket not found", t.ID())
		}
		owner, err = uc.clientRepo.GetByID(txCtx, claimed.ClientID())
		return err
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to assign ticket")
	}

	uc.logger.Infow("ticket claimed successfully", "ticket_id", claimed.ID(), "assignee", cmd.Actor.Username)
	return uc.assembler.ToDTO(claimed, owner), nil
}
