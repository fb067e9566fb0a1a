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

// ProfileImageHandler handles profile image upload and removal
type ProfileImageHandler struct {
	imageService usecaseport.ProfileImageUseCase
	logger       coreport.Logger
}

// NewProfileImageHandler creates a new profile image handler instance
func NewProfileImageHandler(
	imageService usecaseport.ProfileImageUseCase,
	logger coreport.Logger,
) *ProfileImageHandler {
	return &ProfileImageHandler{
		imageService: imageService,
		logger:       logger,
	}
}

// Upload handles the POST /api/profile-image/upload endpoint.
// Multipart form with a user_id field and a profile_image file part.
func (h *ProfileImageHandler) Upload(c *gin.Context) {
	userID := parseID(c.PostForm("user_id"))
	if userID == 0 {
		c.JSON(http.StatusBadRequest, dto.Error(msgInvalidUserID))
		return
	}

	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(msgNoFileUploaded))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(msgNoFileUploaded))
		return
	}
	defer file.Close()

	filename, err := h.imageService.Upload(c.Request.Context(), userID, usecaseport.ImageUpload{
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		// The message is endpoint-specific; the status code comes from the
		// shared error classification.
		var message string
		switch {
		case errors.Is(err, domainerr.ErrInvalidUserID):
			message = msgInvalidUserID
		case errors.Is(err, domainerr.ErrNoFileUploaded):
			message = msgNoFileUploaded
		case errors.Is(err, domainerr.ErrInvalidImageExtension):
			message = msgBadExtension
		case errors.Is(err, domainerr.ErrImageTypeMismatch):
			message = msgMIMEMismatch
		case errors.Is(err, domainerr.ErrImageTooLarge):
			message = msgFileTooLarge
		case errors.Is(err, domainerr.ErrStorageFailure):
			h.logger.Error("Profile image save failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			message = msgUploadFailed
		default:
			h.logger.Error("Profile image upload failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			message = msgDBUpdateFailed
		}
		c.JSON(domainerr.HTTPStatus(err), dto.Error(message))
		return
	}

	// image_url carries the bare stored filename, the same value login's
	// profile_image field uses; clients build the serve URL themselves.
	c.JSON(http.StatusOK, dto.UploadImageResponse{
		Status:   dto.StatusSuccess,
		Message:  msgImageSaved,
		ImageURL: filename,
	})
}

// Delete handles the POST /api/profile-image/delete endpoint
func (h *ProfileImageHandler) Delete(c *gin.Context) {
	userID := parseID(c.PostForm("user_id"))
	if userID == 0 {
		c.JSON(http.StatusBadRequest, dto.Error(msgIncompleteData))
		return
	}

	if err := h.imageService.Delete(c.Request.Context(), userID); err != nil {
		h.logger.Error("Profile image delete failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(domainerr.HTTPStatus(err), dto.Error(msgImageDeleteFailed))
		return
	}

	c.JSON(http.StatusOK, dto.Success(msgImageDeleted))
}
