package usecases

import (
	"context"

	"itm/internal/application/common/dto"
	"itm/internal/domain/user"
	vo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

// UpdateProfileCommand changes the caller's own record. Nil fields keep
// their value; the username never changes.
type UpdateProfileCommand struct {
	Actor    authorization.Principal
	Email    *string
	Password *string
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update profile use case", "username", cmd.Actor.Username)

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Actor.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user", "username", cmd.Actor.Username, "error", err)
		return nil, errors.NewInternalError("failed to update profile")
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found", cmd.Actor.Username)
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError("invalid email", err.Error())
		}
		if !existing.Email().Equals(email) {
			taken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
			if err != nil {
				uc.logger.Errorw("failed to check email", "error", err)
				return nil, errors.NewInternalError("failed to update profile")
			}
			if taken {
				return nil, errors.NewDuplicateNameError("email is already used", email.String())
			}
		}
		if err := existing.ChangeEmail(email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		password, err := vo.NewPassword(*cmd.Password)
		if err != nil {
			return nil, errors.NewValidationError("invalid password", err.Error())
		}
		if err := existing.ChangePassword(password, uc.hasher); err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update profile")
		}
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		if errors.IsDuplicateNameError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update user", "username", existing.Username(), "error", err)
		return nil, errors.NewInternalError("failed to update profile")
	}

	uc.logger.Infow("profile updated successfully", "username", existing.Username())
	return dto.ToUserDTO(existing), nil
}
