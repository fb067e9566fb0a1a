package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction CRUD HTTP requests
type TransactionHandler struct {
	transactionService usecaseport.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionService usecaseport.TransactionUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// parseID parses a wire-format numeric field; 0 means missing or malformed
func parseID(value string) uint64 {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Add handles the POST /api/transactions/add endpoint
func (h *TransactionHandler) Add(c *gin.Context) {
	userID := parseID(c.PostForm("user_id"))
	if userID == 0 {
		c.JSON(http.StatusBadRequest, dto.Error(msgIncompleteData))
		return
	}

	input := usecaseport.CreateTransactionInput{
		UserID: userID,
		Type:   c.PostForm("type"),
		Amount: c.PostForm("amount"),
		Note:   c.PostForm("note"),
	}

	if err := h.transactionService.Create(c.Request.Context(), input); err != nil {
		h.respondError(c, err, msgAddFailed)
		return
	}

	c.JSON(http.StatusOK, dto.Success(msgTransactionAdded))
}

// Update handles the POST /api/transactions/update endpoint
func (h *TransactionHandler) Update(c *gin.Context) {
	id := parseID(c.PostForm("id"))
	userID := parseID(c.PostForm("user_id"))
	if id == 0 || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.Error(msgIncompleteData))
		return
	}

	input := usecaseport.UpdateTransactionInput{
		ID:     id,
		UserID: userID,
		Type:   c.PostForm("type"),
		Amount: c.PostForm("amount"),
		Note:   c.PostForm("note"),
	}

	if err := h.transactionService.Update(c.Request.Context(), input); err != nil {
		h.respondError(c, err, msgUpdateFailed)
		return
	}

	c.JSON(http.StatusOK, dto.Success(msgTransactionUpdated))
}

// Delete handles the POST /api/transactions/delete endpoint
func (h *TransactionHandler) Delete(c *gin.Context) {
	id := parseID(c.PostForm("id"))
	userID := parseID(c.PostForm("user_id"))
	if id == 0 || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.Error(msgIncompleteData))
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err, msgDeleteFailed)
		return
	}

	c.JSON(http.StatusOK, dto.Success(msgTransactionDeleted))
}

// respondError translates use case errors into the response envelope.
// The status code comes from the shared error classification; storage
// failures get the operation's generic message and the detail stays in
// the logs.
func (h *TransactionHandler) respondError(c *gin.Context, err error, genericMessage string) {
	var message string
	switch {
	case errors.Is(err, domainerr.ErrMissingFields), errors.Is(err, domainerr.ErrInvalidUserID):
		message = msgIncompleteData
	case errors.Is(err, domainerr.ErrInvalidTransactionType):
		message = msgInvalidType
	case errors.Is(err, domainerr.ErrInvalidAmount):
		message = msgInvalidAmount
	case errors.Is(err, domainerr.ErrTransactionNotFound):
		message = msgTransactionMissing
	default:
		h.logger.Error("Transaction operation failed", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		message = genericMessage
	}
	c.JSON(domainerr.HTTPStatus(err), dto.Error(message))
}
