package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// MessageRepository implements the message repository interface backed by GORM
type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
	logger logger.Interface
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB, logger logger.Interface) ticket.MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
		logger: logger,
	}
}

// Save persists a new message and assigns the generated ID back to the entity
func (r *MessageRepository) Save(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.ToModel(m)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create message in database", "error", err)
		return fmt.Errorf("failed to create message: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set message ID", "error", err)
		return fmt.Errorf("failed to set message ID: %w", err)
	}

	return nil
}

// ListByTicket retrieves all messages of a ticket in chronological order
func (r *MessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var messageModels []*models.MessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC, id ASC").Find(&messageModels).Error; err != nil {
		r.logger.Errorw("failed to list messages by ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*ticket.Message, 0, len(messageModels))
	for _, model := range messageModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map message model, skipping", "id", model.ID, "error", err)
			continue
		}
		messages = append(messages, entity)
	}

	return messages, nil
}

// LatestAIMessage retrieves the most recent AI-generated message of a ticket
func (r *MessageRepository) LatestAIMessage(ctx context.Context, ticketID uint) (*ticket.Message, error) {
	var model models.MessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ? AND is_ai = ?", ticketID, true).
		Order("created_at DESC, id DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(constants.NoAIResponseFound)
		}
		r.logger.Errorw("failed to get latest AI message", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get latest AI message: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
