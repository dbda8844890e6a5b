package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
)

// loadTicketForMember fetches the ticket and checks the actor belongs to its
// project. Store errors are returned unwrapped for the caller to log.
func loadTicketForMember(
	ctx context.Context,
	tickets ticket.Repository,
	members project.MembershipRepository,
	actor authorization.Principal,
	id string,
) (*ticket.Ticket, error) {
	t, err := tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found", id)
	}
	if err := common.RequireMembership(ctx, members, actor, t.ProjectName()); err != nil {
		return nil, err
	}
	return t, nil
}
