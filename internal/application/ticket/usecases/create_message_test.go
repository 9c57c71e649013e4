package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

func TestCreateMessageUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 5), nil
		},
	}

	var saved []*ticket.Message
	nextID := uint(0)
	mockMsgs := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, m *ticket.Message) error {
			nextID++
			if err := m.SetID(nextID); err != nil {
				return err
			}
			saved = append(saved, m)
			return nil
		},
	}
	responder := &mockResponder{
		GenerateReplyFunc: func(ctx context.Context, prompt string) (string, error) {
			assert.Equal(t, "my printer is broken", prompt)
			return "have you tried turning it off and on again?", nil
		},
	}

	uc := NewCreateMessageUseCase(mockRepo, mockMsgs, responder, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateMessageCommand{
		TicketID: 10,
		UserID:   5,
		Content:  "my printer is broken",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "my printer is broken", result.UserMessage.Content())
	assert.False(t, result.UserMessage.IsAI())
	assert.Equal(t, "have you tried turning it off and on again?", result.AIMessage.Content())
	assert.True(t, result.AIMessage.IsAI())

	require.Len(t, saved, 2, "exactly two messages must be appended")
	assert.False(t, saved[0].IsAI())
	assert.True(t, saved[1].IsAI())
	assert.Equal(t, uint(10), saved[0].TicketID())
	assert.Equal(t, uint(10), saved[1].TicketID())
}

func TestCreateMessageUseCase_Execute_ResponderFailureUsesFallback(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 5), nil
		},
	}

	var saved []*ticket.Message
	mockMsgs := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, m *ticket.Message) error {
			saved = append(saved, m)
			return nil
		},
	}
	responder := &mockResponder{
		GenerateReplyFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", fmt.Errorf("completion API returned status 503")
		},
	}

	uc := NewCreateMessageUseCase(mockRepo, mockMsgs, responder, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateMessageCommand{
		TicketID: 10,
		UserID:   5,
		Content:  "hello?",
	})

	require.NoError(t, err, "a degraded AI reply must not fail the request")
	require.NotNil(t, result)
	assert.Equal(t, constants.AIFallbackMessage, result.AIMessage.Content())
	assert.True(t, result.AIMessage.IsAI())

	require.Len(t, saved, 2, "both messages are stored even when the AI call fails")
	assert.Equal(t, "hello?", saved[0].Content())
	assert.Equal(t, constants.AIFallbackMessage, saved[1].Content())
}

func TestCreateMessageUseCase_Execute_TicketNotFoundOrForeign(t *testing.T) {
	tests := []struct {
		name string
		repo *mockTicketRepository
	}{
		{
			name: "missing ticket",
			repo: &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return nil, errors.NewNotFoundError(constants.TicketNotFound)
				},
			},
		},
		{
			name: "foreign ticket",
			repo: &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return ticketOwnedBy(t, ticketID, 99), nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saves := 0
			mockMsgs := &mockMessageRepository{
				SaveFunc: func(ctx context.Context, m *ticket.Message) error {
					saves++
					return nil
				},
			}

			uc := NewCreateMessageUseCase(tt.repo, mockMsgs, &mockResponder{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), CreateMessageCommand{
				TicketID: 10,
				UserID:   5,
				Content:  "hello",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsNotFoundError(err))
			assert.Equal(t, constants.TicketNotFound, errors.GetAppError(err).Message)
			assert.Zero(t, saves, "no message may be stored without an owned ticket")
		})
	}
}

func TestCreateMessageUseCase_Execute_EmptyContent(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 5), nil
		},
	}

	uc := NewCreateMessageUseCase(mockRepo, &mockMessageRepository{}, &mockResponder{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateMessageCommand{
		TicketID: 10,
		UserID:   5,
		Content:  "",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateMessageUseCase_Execute_UserMessageSaveFailure(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 5), nil
		},
	}
	responderCalls := 0
	responder := &mockResponder{
		GenerateReplyFunc: func(ctx context.Context, prompt string) (string, error) {
			responderCalls++
			return "reply", nil
		},
	}
	mockMsgs := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, m *ticket.Message) error {
			return fmt.Errorf("connection lost")
		},
	}

	uc := NewCreateMessageUseCase(mockRepo, mockMsgs, responder, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateMessageCommand{
		TicketID: 10,
		UserID:   5,
		Content:  "hello",
	})

	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
	assert.Zero(t, responderCalls, "the AI is not called when the user message cannot be stored")
}
