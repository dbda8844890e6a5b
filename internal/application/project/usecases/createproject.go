package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/application/project/dto"
	"itm/internal/domain/project"
	"itm/internal/domain/user"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type CreateProjectCommand struct {
	Actor authorization.Principal
	Name  string
}

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error)
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	userRepo    user.Repository
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	userRepo user.Repository,
	txManager common.TransactionManager,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute creates the project with the actor as admin and first member.
// The actor must still exist: a token outlives the deletion of its user.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name, "creator", cmd.Actor.Username)

	p, err := project.NewProject(cmd.Name, cmd.Actor.Username)
	if err != nil {
		return nil, errors.NewValidationError("invalid project", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		creator, err := uc.userRepo.GetByUsername(txCtx, p.AdminUsername())
		if err != nil {
			return err
		}
		if creator == nil {
			return errors.NewUnauthorizedError("user no longer exists", p.AdminUsername())
		}

		exists, err := uc.projectRepo.ExistsByName(txCtx, p.Name())
		if err != nil {
			return err
		}
		if exists {
			return errors.NewDuplicateNameError("project name is already used", p.Name())
		}
		if err := uc.projectRepo.Create(txCtx, p); err != nil {
			return err
		}
		if err := uc.memberRepo.Add(txCtx, p.Name(), p.AdminUsername()); err != nil {
			return err
		}
		return ensureAdminIsMember(txCtx, uc.memberRepo, p, uc.logger)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create project", "name", p.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create project")
	}

	uc.logger.Infow("project created successfully", "name", p.Name(), "admin", p.AdminUsername())
	return dto.ToProjectDTO(p, cmd.Actor.Username), nil
}
