package usecases

import "context"

// TokenIssuer issues signed access tokens for an authenticated user.
type TokenIssuer interface {
	Generate(userID uint) (string, error)
}

// SignupExecutor executes the signup use case.
type SignupExecutor interface {
	Execute(ctx context.Context, cmd SignupCommand) (*AuthResult, error)
}

// LoginExecutor executes the login use case.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
}

// AuthResult is returned by both signup and login.
type AuthResult struct {
	UserID      uint
	AccessToken string
	TokenType   string
}
