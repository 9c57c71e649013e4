package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SignupCommand struct {
	Email    string
	Password string
}

type SignupUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*AuthResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError(constants.EmailPasswordRequired)
	}

	newUser, err := user.NewUser(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, newUser.Email())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewValidationError(constants.EmailAlreadyRegistered)
	}

	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// The unique index is the last line of defense against a
		// concurrent signup with the same email.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError(constants.EmailAlreadyRegistered)
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	token, err := uc.tokenIssuer.Generate(newUser.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", newUser.ID())
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	return &AuthResult{
		UserID:      newUser.ID(),
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
	}, nil
}
