package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService usecaseport.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService usecaseport.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles the POST /api/login endpoint.
// Accepts form-encoded email and password; no session or token is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, dto.Error(msgIncompleteData))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		// The message is endpoint-specific; the status code comes from the
		// shared error classification.
		var message string
		switch {
		case errors.Is(err, domainerr.ErrUserNotFound):
			message = msgUserNotFound
		case errors.Is(err, domainerr.ErrInvalidCredential):
			message = msgWrongPassword
		case errors.Is(err, domainerr.ErrMissingFields):
			message = msgIncompleteData
		default:
			message = msgServerError
		}
		c.JSON(domainerr.HTTPStatus(err), dto.Error(message))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:       dto.StatusSuccess,
		UserID:       result.UserID,
		Name:         result.Name,
		Email:        result.Email,
		ProfileImage: result.ProfileImage,
	})
}
