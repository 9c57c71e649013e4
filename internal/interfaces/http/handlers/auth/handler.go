package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	signupUC userUC.SignupExecutor
	loginUC  userUC.LoginExecutor
	logger   logger.Interface
}

func NewAuthHandler(
	signupUC userUC.SignupExecutor,
	loginUC userUC.LoginExecutor,
) *AuthHandler {
	return &AuthHandler{
		signupUC: signupUC,
		loginUC:  loginUC,
		logger:   logger.NewLogger(),
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewTokenResponse(result), constants.UserRegisteredSuccessfully)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, constants.LoginSuccess, NewTokenResponse(result))
}
