package usecases

import (
	"context"

	"itm/internal/application/common/dto"
	"itm/internal/domain/client"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type ListClientsExecutor interface {
	Execute(ctx context.Context) ([]*dto.ClientDTO, error)
}

// ListClientsUseCase is open to any authenticated user; tickets need a
// client id to be raised.
type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context) ([]*dto.ClientDTO, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}
	return dto.ToClientDTOs(clients), nil
}
