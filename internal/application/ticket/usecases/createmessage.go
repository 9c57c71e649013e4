package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateMessageCommand struct {
	TicketID uint
	UserID   uint
	Content  string
}

type CreateMessageResult struct {
	UserMessage *ticket.Message
	AIMessage   *ticket.Message
}

type CreateMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	responder   Responder
	logger      logger.Interface
}

func NewCreateMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	responder Responder,
	logger logger.Interface,
) *CreateMessageUseCase {
	return &CreateMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		responder:   responder,
		logger:      logger,
	}
}

// Execute stores the user's message, asks the responder for a reply, and
// stores that reply as a second message on the same ticket. A responder
// failure degrades to the canned fallback text; the request still
// succeeds and exactly two messages are appended either way.
func (uc *CreateMessageUseCase) Execute(ctx context.Context, cmd CreateMessageCommand) (*CreateMessageResult, error) {
	t, err := loadOwnedTicket(ctx, uc.ticketRepo, cmd.TicketID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	userMsg, err := ticket.NewMessage(t.ID(), cmd.Content, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, userMsg); err != nil {
		uc.logger.Errorw("failed to save user message", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	reply, err := uc.responder.GenerateReply(ctx, cmd.Content)
	if err != nil {
		uc.logger.Warnw("AI responder failed, using fallback reply",
			"error", err, "ticket_id", t.ID())
		reply = constants.AIFallbackMessage
	}

	aiMsg, err := ticket.NewMessage(t.ID(), reply, true)
	if err != nil {
		return nil, errors.NewInternalError(constants.InternalServerError, err.Error())
	}

	if err := uc.messageRepo.Save(ctx, aiMsg); err != nil {
		uc.logger.Errorw("failed to save AI message", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("message created with AI reply",
		"ticket_id", t.ID(),
		"user_message_id", userMsg.ID(),
		"ai_message_id", aiMsg.ID())

	return &CreateMessageResult{
		UserMessage: userMsg,
		AIMessage:   aiMsg,
	}, nil
}
