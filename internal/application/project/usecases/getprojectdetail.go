package usecases

import (
	"context"

	"itm/internal/application/common"
	commondto "itm/internal/application/common/dto"
	"itm/internal/application/project/dto"
	ticketdto "itm/internal/application/ticket/dto"
	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	vo "itm/internal/domain/ticket/valueobjects"
	"itm/internal/domain/user"
	"itm/internal/shared/authorization"
	"itm/internal/shared/biztime"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type GetProjectDetailQuery struct {
	Actor authorization.Principal
	Name  string
}

type GetProjectDetailExecutor interface {
	Execute(ctx context.Context, query GetProjectDetailQuery) (*dto.ProjectDetailDTO, error)
}

type GetProjectDetailUseCase struct {
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	userRepo    user.Repository
	ticketRepo  ticket.Repository
	clientRepo  client.Repository
	assembler   *ticketdto.Assembler
	logger      logger.Interface
}

func NewGetProjectDetailUseCase(
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	clientRepo client.Repository,
	assembler *ticketdto.Assembler,
	logger logger.Interface,
) *GetProjectDetailUseCase {
	return &GetProjectDetailUseCase{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		ticketRepo:  ticketRepo,
		clientRepo:  clientRepo,
		assembler:   assembler,
		logger:      logger,
	}
}

// Execute returns the project with its tickets, members and statistics.
// Only members may read it.
func (uc *GetProjectDetailUseCase) Execute(ctx context.Context, query GetProjectDetailQuery) (*dto.ProjectDetailDTO, error) {
	query.Name = project.LookupKey(query.Name)
	p, err := uc.projectRepo.GetByName(ctx, query.Name)
	if err != nil {
		uc.logger.Errorw("failed to get project", "name", query.Name, "error", err)
		return nil, errors.NewInternalError("failed to get project")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found", query.Name)
	}
	if err := common.RequireMembership(ctx, uc.memberRepo, query.Actor, p.Name()); err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.ListByProject(ctx, p.Name())
	if err != nil {
		uc.logger.Errorw("failed to list project tickets", "name", p.Name(), "error", err)
		return nil, errors.NewInternalError("failed to get project")
	}
	clients, err := uc.clientRepo.GetByIDs(ctx, ticketdto.ClientIDs(tickets))
	if err != nil {
		uc.logger.Errorw("failed to load ticket clients", "name", p.Name(), "error", err)
		return nil, errors.NewInternalError("failed to get project")
	}

	usernames, err := uc.memberRepo.ListMembers(ctx, p.Name())
	if err != nil {
		uc.logger.Errorw("failed to list project members", "name", p.Name(), "error", err)
		return nil, errors.NewInternalError("failed to get project")
	}
	members, err := uc.userRepo.GetByUsernames(ctx, usernames)
	if err != nil {
		uc.logger.Errorw("failed to load project members", "name", p.Name(), "error", err)
		return nil, errors.NewInternalError("failed to get project")
	}

	return &dto.ProjectDetailDTO{
		ProjectDTO: *dto.ToProjectDTO(p, query.Actor.Username),
		Tickets:    uc.assembler.ToDTOs(tickets, ticketdto.IndexClients(clients)),
		Users:      commondto.ToUserDTOs(members),
		Stats:      ticketStats(tickets),
		MonthStats: monthStats(tickets),
	}, nil
}

// ticketStats groups the listed tickets by status. Every bucket is
// reported, zero included.
func ticketStats(tickets []*ticket.Ticket) map[string]int64 {
	stats := map[string]int64{dto.StatTotal: int64(len(tickets))}
	for _, status := range vo.AllStatuses() {
		stats[status.Key()] = 0
	}
	for _, t := range tickets {
		stats[t.Status().Key()]++
	}
	return stats
}

// monthStats counts tickets per creation month in the business timezone.
func monthStats(tickets []*ticket.Ticket) map[string]int64 {
	stats := make(map[string]int64)
	for _, t := range tickets {
		stats[biztime.MonthKey(t.CreatedAt())]++
	}
	return stats
}
