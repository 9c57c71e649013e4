package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

func storedUser(t *testing.T, id uint, email, password string) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, email, "hashed:"+password, user.RoleUser, now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "a@b.com", email)
			return storedUser(t, 7, "a@b.com", "pw"), nil
		},
	}

	uc := NewLoginUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "A@B.com",
		Password: "pw",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "token-for-7", result.AccessToken)
	assert.Equal(t, constants.TokenTypeBearer, result.TokenType)
}

func TestLoginUseCase_Execute_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		command LoginCommand
	}{
		{name: "empty email", command: LoginCommand{Email: "", Password: "pw"}},
		{name: "empty password", command: LoginCommand{Email: "a@b.com", Password: ""}},
		{name: "both empty", command: LoginCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookups := 0
			mockRepo := &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					lookups++
					return nil, errors.NewNotFoundError(constants.UserNotFound)
				},
			}

			uc := NewLoginUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, constants.EmailPasswordRequired, errors.GetAppError(err).Message)
			assert.Zero(t, lookups, "missing-field check must come before the user lookup")
		})
	}
}

func TestLoginUseCase_Execute_UserNotFound(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError(constants.UserNotFound)
		},
	}

	uc := NewLoginUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "missing@b.com",
		Password: "pw",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, constants.UserNotFound, errors.GetAppError(err).Message)
}

func TestLoginUseCase_Execute_InvalidPassword(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t, 7, "a@b.com", "pw"), nil
		},
	}

	uc := NewLoginUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "a@b.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsUnauthorizedError(err))
	assert.Equal(t, constants.InvalidPassword, errors.GetAppError(err).Message)
}
