package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/application/ticket/dto"
	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/domain/user"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type AssignTicketCommand struct {
	Actor    authorization.Principal
	TicketID string
	Username string
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	memberRepo project.MembershipRepository
	userRepo   user.Repository
	clientRepo client.Repository
	assembler  *dto.Assembler
	txManager  common.TransactionManager
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	memberRepo project.MembershipRepository,
	userRepo user.Repository,
	clientRepo client.Repository,
	assembler *dto.Assembler,
	txManager common.TransactionManager,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		clientRepo: clientRepo,
		assembler:  assembler,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute (re)assigns the ticket to any existing user. The assignee does
// not have to be a member of the project.
func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assignee", cmd.Username,
		"actor", cmd.Actor.Username)

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

		assignee, err := uc.userRepo.GetByUsername(txCtx, cmd.Username)
		if err != nil {
			return err
		}
		if assignee == nil {
			return errors.NewNotFoundError("user not found", cmd.Username)
		}

		if err := t.AssignTo(assignee.Username()); err != nil {
			return errors.NewValidationError("cannot assign ticket", err.Error())
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
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to assign ticket")
	}

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "assignee", cmd.Username)
	return uc.assembler.ToDTO(t, owner), nil
}
