package auth

import (
	userUC "helpdesk/internal/application/user/usecases"
)

// SignupRequest and LoginRequest carry no binding tags on purpose: the
// use cases validate credentials themselves so the exact response
// messages stay in one place.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignupRequest) ToCommand() userUC.SignupCommand {
	return userUC.SignupCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToCommand() userUC.LoginCommand {
	return userUC.LoginCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

// TokenResponse is the data payload returned by signup and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewTokenResponse(result *userUC.AuthResult) TokenResponse {
	return TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	}
}
