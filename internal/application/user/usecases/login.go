package usecases

import (
	"context"

	"itm/internal/domain/user"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher user.PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	// Same failure for unknown user and wrong password.
	if existing == nil {
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := existing.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("password verification failed", "username", cmd.Username)
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokens.Generate(existing.Username(), existing.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "username", existing.Username(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in successfully", "username", existing.Username())
	return &LoginResult{
		Username:  existing.Username(),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
