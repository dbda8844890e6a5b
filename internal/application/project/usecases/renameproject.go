package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/application/project/dto"
	"itm/internal/domain/access"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type RenameProjectCommand struct {
	Actor   authorization.Principal
	Name    string
	NewName string
}

type RenameProjectExecutor interface {
	Execute(ctx context.Context, cmd RenameProjectCommand) (*dto.ProjectDTO, error)
}

type RenameProjectUseCase struct {
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	ticketRepo  ticket.Repository
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewRenameProjectUseCase(
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	ticketRepo ticket.Repository,
	txManager common.TransactionManager,
	logger logger.Interface,
) *RenameProjectUseCase {
	return &RenameProjectUseCase{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute renames in place. Tickets and memberships follow the new name in
// the same transaction.
func (uc *RenameProjectUseCase) Execute(ctx context.Context, cmd RenameProjectCommand) (*dto.ProjectDTO, error) {
	cmd.Name = project.LookupKey(cmd.Name)
	uc.logger.Infow("executing rename project use case",
		"name", cmd.Name,
		"new_name", cmd.NewName,
		"actor", cmd.Actor.Username)

	newName, err := project.NormalizeName(cmd.NewName)
	if err != nil {
		return nil, errors.NewValidationError("invalid project name", err.Error())
	}

	var renamed *project.Project
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
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
		if newName == p.Name() {
			renamed = p
			return nil
		}

		exists, err := uc.projectRepo.ExistsByName(txCtx, newName)
		if err != nil {
			return err
		}
		if exists {
			return errors.NewDuplicateNameError("project name is already used", newName)
		}

		oldName := p.Name()
		if err := p.Rename(newName); err != nil {
			return errors.NewValidationError("invalid project name", err.Error())
		}
		if err := uc.projectRepo.Rename(txCtx, oldName, p.Name()); err != nil {
			return err
		}
		if err := uc.memberRepo.RenameProject(txCtx, oldName, p.Name()); err != nil {
			return err
		}
		if err := uc.ticketRepo.RenameProject(txCtx, oldName, p.Name()); err != nil {
			return err
		}
		renamed = p
		return ensureAdminIsMember(txCtx, uc.memberRepo, p, uc.logger)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to rename project", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to rename project")
	}

	uc.logger.Infow("project renamed successfully", "old_name", cmd.Name, "new_name", renamed.Name())
	return dto.ToProjectDTO(renamed, cmd.Actor.Username), nil
}
