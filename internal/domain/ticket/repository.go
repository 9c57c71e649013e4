package ticket

import "context"

// Repository is the persistence boundary for ticket aggregates.
// GetByID returns a not-found application error for absent rows.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)
}

// MessageRepository persists ticket messages.
type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Message, error)
	LatestAIMessage(ctx context.Context, ticketID uint) (*Message, error)
}
