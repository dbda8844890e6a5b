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

type CreateClientCommand struct {
	Actor   authorization.Principal
	Name    string
	Email   string
	Phone   string
	Address string
}

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error)
}

type CreateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.Repository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing create client use case", "name", cmd.Name, "actor", cmd.Actor.Username)

	if err := common.DecisionError(access.CanManageGlobalEntities(cmd.Actor), "only an admin can manage clients"); err != nil {
		return nil, err
	}

	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}
	c, err := client.NewClient(cmd.Name, email, cmd.Phone, cmd.Address)
	if err != nil {
		return nil, errors.NewValidationError("invalid client", err.Error())
	}

	if err := uc.clientRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create client", "name", c.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create client")
	}

	uc.logger.Infow("client created successfully", "id", c.ID(), "name", c.Name())
	return dto.ToClientDTO(c), nil
}
