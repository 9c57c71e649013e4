package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// MessageMapper handles the conversion between Message domain entities and persistence models.
type MessageMapper interface {
	// ToModel converts a message domain entity to a persistence model.
	ToModel(msg *ticket.Message) *models.MessageModel

	// ToDomain converts a message persistence model to a domain entity.
	ToDomain(model *models.MessageModel) (*ticket.Message, error)
}

// MessageMapperImpl is the concrete implementation of MessageMapper.
type MessageMapperImpl struct{}

// NewMessageMapper creates a new MessageMapper.
func NewMessageMapper() MessageMapper {
	return &MessageMapperImpl{}
}

// ToModel converts a message domain entity to a persistence model.
func (m *MessageMapperImpl) ToModel(msg *ticket.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:        msg.ID(),
		TicketID:  msg.TicketID(),
		Content:   msg.Content(),
		IsAI:      msg.IsAI(),
		CreatedAt: msg.CreatedAt().UnixMilli(),
	}
}

// ToDomain converts a message persistence model to a domain entity.
func (m *MessageMapperImpl) ToDomain(model *models.MessageModel) (*ticket.Message, error) {
	msg, err := ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.Content,
		model.IsAI,
		time.UnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message %d: %w", model.ID, err)
	}
	return msg, nil
}
