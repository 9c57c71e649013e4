package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ticketUC "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
}

func (r *CreateTicketRequest) ToCommand(ownerID uint) ticketUC.CreateTicketCommand {
	return ticketUC.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		OwnerID:     ownerID,
	}
}

type CreateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (r *CreateMessageRequest) ToCommand(ticketID, userID uint) ticketUC.CreateMessageCommand {
	return ticketUC.CreateMessageCommand{
		TicketID: ticketID,
		UserID:   userID,
		Content:  r.Content,
	}
}

type TicketResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status(),
		OwnerID:     t.OwnerID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func NewTicketListResponse(tickets []*ticket.Ticket) []TicketResponse {
	responses := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, NewTicketResponse(t))
	}
	return responses
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Content   string    `json:"content"`
	IsAI      bool      `json:"is_ai"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessageResponse(m *ticket.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID(),
		TicketID:  m.TicketID(),
		Content:   m.Content(),
		IsAI:      m.IsAI(),
		CreatedAt: m.CreatedAt(),
	}
}

// CreateMessageResponse pairs the stored user message with the AI reply
// generated for it.
type CreateMessageResponse struct {
	UserMessage MessageResponse `json:"user_message"`
	AIMessage   MessageResponse `json:"ai_message"`
}

// AIResponseEvent is the payload of the single server-push event emitted
// by the AI response stream.
type AIResponseEvent struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		// Unparseable ids behave like absent tickets.
		return 0, errors.NewNotFoundError(constants.TicketNotFound)
	}
	return uint(id), nil
}
