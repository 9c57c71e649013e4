package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

func ticketOwnedBy(t *testing.T, id, ownerID uint) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket("title", "description", ownerID)
	require.NoError(t, err)
	require.NoError(t, tkt.SetID(id))
	return tkt
}

func TestGetTicketUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 5), nil
		},
	}

	uc := NewGetTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 10, UserID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.ID())
}

func TestGetTicketUseCase_Execute_ForeignTicketIndistinguishableFromMissing(t *testing.T) {
	// Both the absent ticket and the foreign ticket must produce the
	// identical not-found error so existence can never be probed.
	missingRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError(constants.TicketNotFound)
		},
	}
	foreignRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 99), nil
		},
	}

	ucMissing := NewGetTicketUseCase(missingRepo, &mockLogger{})
	_, errMissing := ucMissing.Execute(context.Background(), GetTicketQuery{TicketID: 10, UserID: 5})

	ucForeign := NewGetTicketUseCase(foreignRepo, &mockLogger{})
	_, errForeign := ucForeign.Execute(context.Background(), GetTicketQuery{TicketID: 10, UserID: 5})

	require.Error(t, errMissing)
	require.Error(t, errForeign)
	assert.True(t, errors.IsNotFoundError(errMissing))
	assert.True(t, errors.IsNotFoundError(errForeign))
	assert.Equal(t, errMissing.Error(), errForeign.Error())
	assert.Equal(t, constants.TicketNotFound, errors.GetAppError(errForeign).Message)
}

func TestGetAIResponseUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 5), nil
		},
	}
	mockMsgs := &mockMessageRepository{
		LatestAIMessageFunc: func(ctx context.Context, ticketID uint) (*ticket.Message, error) {
			msg, err := ticket.NewMessage(ticketID, "the stored answer", true)
			require.NoError(t, err)
			require.NoError(t, msg.SetID(77))
			return msg, nil
		},
	}

	uc := NewGetAIResponseUseCase(mockRepo, mockMsgs, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetAIResponseQuery{TicketID: 10, UserID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "the stored answer", result.Content)
	assert.NotZero(t, result.CreatedAt)
}

func TestGetAIResponseUseCase_Execute_NoAIMessage(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 5), nil
		},
	}

	uc := NewGetAIResponseUseCase(mockRepo, &mockMessageRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetAIResponseQuery{TicketID: 10, UserID: 5})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, constants.NoAIResponseFound, errors.GetAppError(err).Message)
}

func TestGetAIResponseUseCase_Execute_ForeignTicket(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketOwnedBy(t, ticketID, 99), nil
		},
	}

	uc := NewGetAIResponseUseCase(mockRepo, &mockMessageRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), GetAIResponseQuery{TicketID: 10, UserID: 5})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, constants.TicketNotFound, errors.GetAppError(err).Message)
}
