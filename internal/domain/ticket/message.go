package ticket

import (
	"fmt"
	"time"
)

// Message is a single turn in a ticket's thread, authored by the user or
// generated by the AI responder.
type Message struct {
	id        uint
	ticketID  uint
	content   string
	isAI      bool
	createdAt time.Time
}

func NewMessage(ticketID uint, content string, isAI bool) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}

	return &Message{
		ticketID:  ticketID,
		content:   content,
		isAI:      isAI,
		createdAt: time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	content string,
	isAI bool,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:        id,
		ticketID:  ticketID,
		content:   content,
		isAI:      isAI,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) TicketID() uint       { return m.ticketID }
func (m *Message) Content() string      { return m.content }
func (m *Message) IsAI() bool           { return m.isAI }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// SetID assigns the persistence identifier after the initial save.
func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
