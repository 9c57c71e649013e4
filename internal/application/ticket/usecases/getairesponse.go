package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetAIResponseQuery struct {
	TicketID uint
	UserID   uint
}

type GetAIResponseResult struct {
	Content   string
	CreatedAt time.Time
}

type GetAIResponseUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewGetAIResponseUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *GetAIResponseUseCase {
	return &GetAIResponseUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Execute returns the most recent stored AI reply for an owned ticket.
// It is the final answer, not an incremental generation.
func (uc *GetAIResponseUseCase) Execute(ctx context.Context, query GetAIResponseQuery) (*GetAIResponseResult, error) {
	t, err := loadOwnedTicket(ctx, uc.ticketRepo, query.TicketID, query.UserID)
	if err != nil {
		return nil, err
	}

	msg, err := uc.messageRepo.LatestAIMessage(ctx, t.ID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.NoAIResponseFound)
		}
		uc.logger.Errorw("failed to load latest AI message", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return &GetAIResponseResult{
		Content:   msg.Content(),
		CreatedAt: msg.CreatedAt(),
	}, nil
}
