package usecases

import (
	"context"
	"fmt"

	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/shared/logger"
)

// ProjectRemover deletes a project together with its tickets and
// memberships. It must run inside a transaction.
type ProjectRemover struct {
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

func NewProjectRemover(
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ProjectRemover {
	return &ProjectRemover{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (r *ProjectRemover) Remove(ctx context.Context, name string) error {
	tickets, err := r.ticketRepo.DeleteByProject(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete project tickets: %w", err)
	}
	members, err := r.memberRepo.DeleteByProject(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete project memberships: %w", err)
	}
	if err := r.projectRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	r.logger.Infow("project removed with cascade",
		"project", name,
		"tickets_deleted", tickets,
		"memberships_deleted", members)
	return nil
}
