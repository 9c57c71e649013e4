package ticket

import (
	"fmt"
	"time"
)

// StatusOpen is the initial and, for now, only ticket status. Tickets are
// append-only: no endpoint mutates status after creation.
const StatusOpen = "open"

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      string
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description string, ownerID uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		status:      StatusOpen,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if status == "" {
		status = StatusOpen
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) Title() string        { return t.title }
func (t *Ticket) Description() string  { return t.description }
func (t *Ticket) Status() string       { return t.status }
func (t *Ticket) OwnerID() uint        { return t.ownerID }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// SetID assigns the persistence identifier after the initial save.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsOwnedBy is the single capability check gating every ticket and message
// operation. A ticket not owned by the caller must be treated exactly like
// a ticket that does not exist.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}
