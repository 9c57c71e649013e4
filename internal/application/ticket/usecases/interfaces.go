package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
)

// Responder generates the assistant reply for a user message.
type Responder interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// CreateTicketExecutor executes the create ticket use case.
type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error)
}

// ListTicketsExecutor executes the list tickets use case.
type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error)
}

// GetTicketExecutor executes the get ticket use case.
type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error)
}

// CreateMessageExecutor executes the create message use case.
type CreateMessageExecutor interface {
	Execute(ctx context.Context, cmd CreateMessageCommand) (*CreateMessageResult, error)
}

// GetAIResponseExecutor executes the latest-AI-response use case.
type GetAIResponseExecutor interface {
	Execute(ctx context.Context, query GetAIResponseQuery) (*GetAIResponseResult, error)
}
