package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/application/common/dto"
	"itm/internal/domain/access"
	"itm/internal/domain/client"
	uservo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

// UpdateClientCommand replaces every contact field of the client.
type UpdateClientCommand struct {
	Actor   authorization.Principal
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error)
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing update client use case", "id", cmd.ID, "actor", cmd.Actor.Username)

	if err := common.DecisionError(access.CanManageGlobalEntities(cmd.Actor), "only an admin can manage clients"); err != nil {
		return nil, err
	}

	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}

	existing, err := uc.clientRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "id", cmd.ID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("client not found", cmd.ID)
	}

	if err := existing.Update(cmd.Name, email, cmd.Phone, cmd.Address); err != nil {
		return nil, errors.NewValidationError("invalid client", err.Error())
	}
	if err := uc.clientRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update client", "id", cmd.ID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	uc.logger.Infow("client updated successfully", "id", existing.ID())
	return dto.ToClientDTO(existing), nil
}
