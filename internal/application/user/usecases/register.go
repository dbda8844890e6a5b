package usecases

import (
	"context"
	"strings"

	"itm/internal/application/common/dto"
	"itm/internal/domain/user"
	vo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute creates a non-admin user.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError("invalid password", err.Error())
	}

	username := strings.TrimSpace(cmd.Username)
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to look up username", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	if existing != nil {
		return nil, errors.NewDuplicateNameError("username is already used", username)
	}

	taken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	if taken {
		return nil, errors.NewDuplicateNameError("email is already used", email.String())
	}

	newUser, err := user.NewUser(username, email, password, false, uc.hasher)
	if err != nil {
		return nil, errors.NewValidationError("invalid user", err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateNameError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered successfully", "username", newUser.Username())
	return dto.ToUserDTO(newUser), nil
}
