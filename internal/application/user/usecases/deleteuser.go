package usecases

import (
	"context"

	"itm/internal/application/common"
	"itm/internal/domain/access"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/domain/user"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor    authorization.Principal
	Username string
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type DeleteUserUseCase struct {
	userRepo    user.Repository
	projectRepo project.Repository
	memberRepo  project.MembershipRepository
	ticketRepo  ticket.Repository
	remover     ProjectRemover
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	projectRepo project.Repository,
	memberRepo project.MembershipRepository,
	ticketRepo ticket.Repository,
	remover ProjectRemover,
	txManager common.TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		ticketRepo:  ticketRepo,
		remover:     remover,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute removes a user. Projects the user administers go with it, since
// a project cannot exist without its admin. Remaining memberships are
// dropped and tickets assigned to the user become unassigned.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "username", cmd.Username, "actor", cmd.Actor.Username)

	if err := common.DecisionError(access.CanManageGlobalEntities(cmd.Actor), "only an admin can delete users"); err != nil {
		return err
	}

	var (
		projectsDeleted int
		unassigned      int64
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.userRepo.GetByUsername(txCtx, cmd.Username)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.NewNotFoundError("user not found", cmd.Username)
		}

		owned, err := uc.projectRepo.ListByAdmin(txCtx, existing.Username())
		if err != nil {
			return err
		}
		for _, p := range owned {
			if err := uc.remover.Remove(txCtx, p.Name()); err != nil {
				return err
			}
		}
		projectsDeleted = len(owned)

		if _, err := uc.memberRepo.DeleteByUser(txCtx, existing.Username()); err != nil {
			return err
		}
		if unassigned, err = uc.ticketRepo.ClearAssignee(txCtx, existing.Username()); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, existing.Username())
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete user", "username", cmd.Username, "error", err)
		return errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted successfully",
		"username", cmd.Username,
		"projects_deleted", projectsDeleted,
		"tickets_unassigned", unassigned)
	return nil
}
