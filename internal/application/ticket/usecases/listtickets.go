package usecases

import (
	"context"

	"itm/internal/application/ticket/dto"
	"itm/internal/domain/client"
	"itm/internal/domain/ticket"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor authorization.Principal
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	clientRepo client.Repository
	assembler  *dto.Assembler
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	clientRepo client.Repository,
	assembler *dto.Assembler,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		clientRepo: clientRepo,
		assembler:  assembler,
		logger:     logger,
	}
}

// Execute lists the tickets assigned to the actor, each with its client.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.ListByAssignee(ctx, query.Actor.Username)
	if err != nil {
		uc.logger.Errorw("failed to list assigned tickets", "username", query.Actor.Username, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}
	clients, err := uc.clientRepo.GetByIDs(ctx, dto.ClientIDs(tickets))
	if err != nil {
		uc.logger.Errorw("failed to load ticket clients", "username", query.Actor.Username, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}
	return uc.assembler.ToDTOs(tickets, dto.IndexClients(clients)), nil
}
