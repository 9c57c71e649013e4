package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

// loadOwnedTicket resolves a ticket for the given user. A ticket owned by
// someone else yields the same not-found error as a missing one, so a
// caller can never probe for the existence of another user's tickets.
func loadOwnedTicket(ctx context.Context, repo ticket.Repository, ticketID, userID uint) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.TicketNotFound)
		}
		return nil, err
	}

	if !t.IsOwnedBy(userID) {
		return nil, errors.NewNotFoundError(constants.TicketNotFound)
	}

	return t, nil
}
