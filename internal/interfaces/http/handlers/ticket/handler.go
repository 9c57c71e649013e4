package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketUC "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  ticketUC.CreateTicketExecutor
	listTicketsUC   ticketUC.ListTicketsExecutor
	getTicketUC     ticketUC.GetTicketExecutor
	createMessageUC ticketUC.CreateMessageExecutor
	getAIResponseUC ticketUC.GetAIResponseExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC ticketUC.CreateTicketExecutor,
	listTicketsUC ticketUC.ListTicketsExecutor,
	getTicketUC ticketUC.GetTicketExecutor,
	createMessageUC ticketUC.CreateMessageExecutor,
	getAIResponseUC ticketUC.GetAIResponseExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		listTicketsUC:   listTicketsUC,
		getTicketUC:     getTicketUC,
		createMessageUC: createMessageUC,
		getAIResponseUC: getAIResponseUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewTicketResponse(result), constants.TicketCreatedSuccessfully)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), ticketUC.ListTicketsQuery{OwnerID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, constants.TicketsRetrievedSuccessfully, NewTicketListResponse(result))
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), ticketUC.GetTicketQuery{
		TicketID: ticketID,
		UserID:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, constants.TicketRetrievedSuccessfully, NewTicketResponse(result))
}

// CreateMessage handles POST /tickets/:id/messages
func (h *TicketHandler) CreateMessage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create message", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.createMessageUC.Execute(c.Request.Context(), req.ToCommand(ticketID, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateMessageResponse{
		UserMessage: NewMessageResponse(result.UserMessage),
		AIMessage:   NewMessageResponse(result.AIMessage),
	}, constants.MessageCreated)
}

// StreamAIResponse handles GET /tickets/:id/ai-response. The latest stored
// AI reply is pushed as one SSE event and the stream ends; errors are
// reported as plain JSON envelopes before any stream bytes are written.
func (h *TicketHandler) StreamAIResponse(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.getAIResponseUC.Execute(c.Request.Context(), ticketUC.GetAIResponseQuery{
		TicketID: ticketID,
		UserID:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("message", AIResponseEvent{
		Content:   result.Content,
		CreatedAt: result.CreatedAt,
	})
	c.Writer.Flush()
}
