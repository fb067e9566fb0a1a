package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/fintrack-app/fintrack-backend/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileImageRouter(service usecaseport.ProfileImageUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	profileImageHandler := NewProfileImageHandler(service, logger.NewNoopLogger())
	router.POST("/api/profile-image/upload", profileImageHandler.Upload)
	router.POST("/api/profile-image/delete", profileImageHandler.Delete)
	return router
}

func multipartUpload(t *testing.T, userID, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	require.NoError(t, writer.WriteField("user_id", userID))
	part, err := writer.CreateFormFile("profile_image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadProfileImageEndpoint(t *testing.T) {
	t.Run("Successful upload returns the image URL", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)
		mockService.EXPECT().Upload(mock.Anything, uint64(7), mock.MatchedBy(func(upload usecaseport.ImageUpload) bool {
			return upload.FileName == "avatar.png" && upload.Content != nil
		})).Return("profile_7_1700000000.png", nil).Once()

		router := newProfileImageRouter(mockService)
		body, contentType := multipartUpload(t, "7", "avatar.png", []byte("fake png"))

		req := httptest.NewRequest(http.MethodPost, "/api/profile-image/upload", body)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "success", response["status"])
		assert.Equal(t, "Profile image uploaded successfully", response["message"])
		// The bare stored filename, usable directly as the serve endpoint's
		// file parameter and interchangeable with login's profile_image value.
		assert.Equal(t, "profile_7_1700000000.png", response["image_url"])
	})

	t.Run("Missing file part", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)

		router := newProfileImageRouter(mockService)
		recorder := postForm(router, "/api/profile-image/upload", url.Values{"user_id": {"7"}})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "No file uploaded or upload error", response["message"])
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)

		router := newProfileImageRouter(mockService)
		body, contentType := multipartUpload(t, "0", "avatar.png", []byte("fake png"))

		req := httptest.NewRequest(http.MethodPost, "/api/profile-image/upload", body)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "Invalid user ID", response["message"])
	})

	t.Run("Disallowed extension envelope", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)
		mockService.EXPECT().Upload(mock.Anything, uint64(7), mock.Anything).Return("", errs.ErrInvalidImageExtension).Once()

		router := newProfileImageRouter(mockService)
		body, contentType := multipartUpload(t, "7", "script.php", []byte("<?php"))

		req := httptest.NewRequest(http.MethodPost, "/api/profile-image/upload", body)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "Invalid file extension. Allowed: jpg, jpeg, png, gif", response["message"])
	})

	t.Run("Oversized file envelope", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)
		mockService.EXPECT().Upload(mock.Anything, uint64(7), mock.Anything).Return("", errs.ErrImageTooLarge).Once()

		router := newProfileImageRouter(mockService)
		body, contentType := multipartUpload(t, "7", "huge.png", []byte("fake png"))

		req := httptest.NewRequest(http.MethodPost, "/api/profile-image/upload", body)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "File size too large. Maximum 5MB allowed", response["message"])
	})

	t.Run("Storage failure envelope", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)
		mockService.EXPECT().Upload(mock.Anything, uint64(7), mock.Anything).Return("", errs.ErrStorageFailure).Once()

		router := newProfileImageRouter(mockService)
		body, contentType := multipartUpload(t, "7", "avatar.png", []byte("fake png"))

		req := httptest.NewRequest(http.MethodPost, "/api/profile-image/upload", body)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "Failed to upload file", response["message"])
	})
}

func TestDeleteProfileImageEndpoint(t *testing.T) {
	t.Run("Successful delete", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)
		mockService.EXPECT().Delete(mock.Anything, uint64(7)).Return(nil).Once()

		router := newProfileImageRouter(mockService)
		recorder := postForm(router, "/api/profile-image/delete", url.Values{"user_id": {"7"}})

		assert.Equal(t, http.StatusOK, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "Foto profil berhasil dihapus", response["message"])
	})

	t.Run("Missing user ID", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)

		router := newProfileImageRouter(mockService)
		recorder := postForm(router, "/api/profile-image/delete", url.Values{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Reference clear failure returns 500", func(t *testing.T) {
		mockService := usecasemocks.NewMockProfileImageUseCase(t)
		mockService.EXPECT().Delete(mock.Anything, uint64(7)).Return(errs.ErrDatabaseConnection).Once()

		router := newProfileImageRouter(mockService)
		recorder := postForm(router, "/api/profile-image/delete", url.Values{"user_id": {"7"}})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		response := decodeBody(t, recorder)
		assert.Equal(t, "Gagal menghapus foto profil", response["message"])
	})
}
