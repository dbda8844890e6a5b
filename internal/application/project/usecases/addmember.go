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

type AddMemberCommand struct {
	Actor       authorization.Principal
	ProjectName string
	Username    string
}

type AddMemberExecutor interface {
	Execute(ctx context.Context, cmd AddMemberCommand) error
}

type AddMemberUseCase struct {
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	userRepo    user.Repository
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewAddMemberUseCase(
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	userRepo user.Repository,
	txManager common.TransactionManager,
	logger logger.Interface,
) *AddMemberUseCase {
	return &AddMemberUseCase{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute is idempotent: adding an existing member succeeds.
func (uc *AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) error {
	cmd.ProjectName = project.LookupKey(cmd.ProjectName)
	uc.logger.Infow("executing add member use case",
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

		target, err := uc.userRepo.GetByUsername(txCtx, cmd.Username)
		if err != nil {
			return err
		}
		if target == nil {
			return errors.NewNotFoundError("user not found", cmd.Username)
		}

		if err := uc.memberRepo.Add(txCtx, p.Name(), target.Username()); err != nil {
			return err
		}
		return ensureAdminIsMember(txCtx, uc.memberRepo, p, uc.logger)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to add member", "project", cmd.ProjectName, "username", cmd.Username, "error", err)
		return errors.NewInternalError("failed to add member")
	}

	uc.logger.Infow("member added successfully", "project", cmd.ProjectName, "username", cmd.Username)
	return nil
}
