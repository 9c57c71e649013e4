package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketUC "helpdesk/internal/application/ticket/usecases"
	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/ai"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	authHandler    *authhandlers.AuthHandler
	ticketHandler  *tickethandlers.TicketHandler
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	messageRepo := repository.NewMessageRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Algorithm, cfg.Auth.JWT.AccessExpMinutes)
	responder := ai.NewGroqClient(&cfg.AI, log)

	signupUC := userUC.NewSignupUseCase(userRepo, hasher, jwtService, log)
	loginUC := userUC.NewLoginUseCase(userRepo, hasher, jwtService, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, log)
	createMessageUC := ticketUC.NewCreateMessageUseCase(ticketRepo, messageRepo, responder, log)
	getAIResponseUC := ticketUC.NewGetAIResponseUseCase(ticketRepo, messageRepo, log)

	authHandler := authhandlers.NewAuthHandler(signupUC, loginUC)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		listTicketsUC,
		getTicketUC,
		createMessageUC,
		getAIResponseUC,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		ticketHandler:  ticketHandler,
		authMiddleware: authMiddleware,
		allowedOrigins: cfg.Server.AllowedOrigins,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", nil)
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
