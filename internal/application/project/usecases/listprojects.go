package usecases

import (
	"context"

	"itm/internal/application/project/dto"
	"itm/internal/domain/project"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type ListProjectsQuery struct {
	Actor authorization.Principal
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) ([]*dto.ProjectDTO, error)
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute lists the projects the actor is a member of.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) ([]*dto.ProjectDTO, error) {
	projects, err := uc.projectRepo.ListByMember(ctx, query.Actor.Username)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "username", query.Actor.Username, "error", err)
		return nil, errors.NewInternalError("failed to list projects")
	}
	return dto.ToProjectDTOs(projects, query.Actor.Username), nil
}
