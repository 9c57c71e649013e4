package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

// Execute runs the fixed check sequence: empty fields, then user
// existence, then password. Each step maps to a distinct response code.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError(constants.EmailPasswordRequired)
	}

	// Emails are stored normalized; match the signup normalization here.
	email := strings.TrimSpace(strings.ToLower(cmd.Email))

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.UserNotFound)
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}

	if err := u.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("password verification failed", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError(constants.InvalidPassword)
	}

	token, err := uc.tokenIssuer.Generate(u.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &AuthResult{
		UserID:      u.ID(),
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
	}, nil
}
