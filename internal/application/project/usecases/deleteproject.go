package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/domain/access"
	"itm/internal/domain/project"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type DeleteProjectCommand struct {
	Actor authorization.Principal
	Name  string
}

type DeleteProjectExecutor interface {
	Execute(ctx context.Context, cmd DeleteProjectCommand) error
}

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	remover     *ProjectRemover
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	remover *ProjectRemover,
	txManager common.TransactionManager,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		remover:     remover,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	cmd.Name = project.LookupKey(cmd.Name)
	uc.logger.Infow("executing delete project use case", "name", cmd.Name, "actor", cmd.Actor.Username)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.projectRepo.GetByName(txCtx, cmd.Name)
		if err != nil {
			return err
		}
		if p == nil {
			return errors.NewNotFoundError("project not found", cmd.Name)
		}
		if err := common.DecisionError(access.CanManageProject(cmd.Actor, p), "you are not the admin of this project"); err != nil {
			return err
		}
		return uc.remover.Remove(txCtx, p.Name())
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete project", "name", cmd.Name, "error", err)
		return errors.NewInternalError("failed to delete project")
	}

	uc.logger.Infow("project deleted successfully", "name", cmd.Name)
	return nil
}
