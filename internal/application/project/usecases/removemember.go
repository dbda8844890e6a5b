package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/domain/access"
	"itm/internal/domain/project"
	"itm/internal/domain/user"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type RemoveMemberCommand struct {
	Actor       authorization.Principal
	ProjectName string
	Username    string
}

type RemoveMemberExecutor interface {
	Execute(ctx context.Context, cmd RemoveMemberCommand) error
}

type RemoveMemberUseCase struct {
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	userRepo    user.Repository
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewRemoveMemberUseCase(
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	userRepo user.Repository,
	txManager common.TransactionManager,
	logger logger.Interface,
) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute removes a non-admin member. Removing a user who is not a member
// succeeds without change.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) error {
	cmd.ProjectName = project.LookupKey(cmd.ProjectName)
	uc.logger.Infow("executing remove member use case",
		"project", cmd.ProjectName,
		"username", cmd.Username,
		"actor", cmd.Actor.Username)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.projectRepo.GetByName(txCtx, cmd.ProjectName)
		if err != nil {
			return err
		}
		if p == nil {
			return errors.NewNotFoundError("project not found", cmd.ProjectName)
		}
		if err := common.DecisionError(access.CanManageProject(cmd.Actor, p), "you are not the admin of this project"); err != nil {
			return err
		}
		if err := common.DecisionError(access.CanRemoveMember(p, cmd.Username), "the project admin cannot be removed"); err != nil {
			return err
		}

		target, err := uc.userRepo.GetByUsername(txCtx, cmd.Username)
		if err != nil {
			return err
		}
		if target == nil {
			return errors.NewNotFoundError("user not found", cmd.Username)
		}

		if err := uc.memberRepo.Remove(txCtx, p.Name(), target.Username()); err != nil {
			return err
		}
		return ensureAdminIsMember(txCtx, uc.memberRepo, p, uc.logger)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to remove member", "project", cmd.ProjectName, "username", cmd.Username, "error", err)
		return errors.NewInternalError("failed to remove member")
	}

	uc.logger.Infow("member removed successfully", "project", cmd.ProjectName, "username", cmd.Username)
	return nil
}
