package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/domain/access"
	"itm/internal/domain/client"
	"itm/internal/domain/ticket"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type DeleteClientCommand struct {
	Actor authorization.Principal
	ID    string
}

type DeleteClientExecutor interface {
	Execute(ctx context.Context, cmd DeleteClientCommand) error
}

type DeleteClientUseCase struct {
	clientRepo client.Repository
	ticketRepo ticket.Repository
	txManager  common.TransactionManager
	logger     logger.Interface
}

func NewDeleteClientUseCase(
	clientRepo client.Repository,
	ticketRepo ticket.Repository,
	txManager common.TransactionManager,
	logger logger.Interface,
) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute deletes the client and every ticket raised against it.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, cmd DeleteClientCommand) error {
	uc.logger.Infow("executing delete client use case", "id", cmd.ID, "actor", cmd.Actor.Username)

	if err := common.DecisionError(access.CanManageGlobalEntities(cmd.Actor), "only an admin can manage clients"); err != nil {
		return err
	}

	var ticketsDeleted int64
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.clientRepo.GetByID(txCtx, cmd.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.NewNotFoundError("client not found", cmd.ID)
		}
		if ticketsDeleted, err = uc.ticketRepo.DeleteByClient(txCtx, existing.ID()); err != nil {
			return err
		}
		return uc.clientRepo.Delete(txCtx, existing.ID())
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete client", "id", cmd.ID, "error", err)
		return errors.NewInternalError("failed to delete client")
	}

	uc.logger.Infow("client deleted successfully", "id", cmd.ID, "tickets_deleted", ticketsDeleted)
	return nil
}
