package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
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

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func newAuthRouter(authService usecaseport.AuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authHandler := NewAuthHandler(authService, logger.NewNoopLogger())
	router.POST("/api/login", authHandler.Login)
	return router
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Successful login returns the profile", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		image := "profile_42_1700000000.png"
		mockAuth.EXPECT().Login(mock.Anything, "budi@example.com", "secret123").Return(&usecaseport.LoginResult{
			UserID:       42,
			Name:         "Budi",
			Email:        "budi@example.com",
			ProfileImage: &image,
		}, nil).Once()

		router := newAuthRouter(mockAuth)
		recorder := postForm(router, "/api/login", url.Values{
			"email":    {"budi@example.com"},
			"password": {"secret123"},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, float64(42), body["user_id"])
		assert.Equal(t, "Budi", body["name"])
		assert.Equal(t, image, body["profile_image"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("Missing fields return the incomplete data envelope", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)

		router := newAuthRouter(mockAuth)
		recorder := postForm(router, "/api/login", url.Values{"email": {"budi@example.com"}})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Data tidak lengkap", body["message"])
	})

	t.Run("Unknown email returns 404", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().Login(mock.Anything, "ghost@example.com", "secret123").Return(nil, errs.ErrUserNotFound).Once()

		router := newAuthRouter(mockAuth)
		recorder := postForm(router, "/api/login", url.Values{
			"email":    {"ghost@example.com"},
			"password": {"secret123"},
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "User tidak ditemukan", body["message"])
	})

	t.Run("Wrong password returns 401", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().Login(mock.Anything, "budi@example.com", "wrong").Return(nil, errs.ErrInvalidCredential).Once()

		router := newAuthRouter(mockAuth)
		recorder := postForm(router, "/api/login", url.Values{
			"email":    {"budi@example.com"},
			"password": {"wrong"},
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Password salah", body["message"])
	})

	t.Run("Unexpected errors return the generic 500 envelope", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().Login(mock.Anything, "budi@example.com", "secret123").Return(nil, errs.ErrDatabaseConnection).Once()

		router := newAuthRouter(mockAuth)
		recorder := postForm(router, "/api/login", url.Values{
			"email":    {"budi@example.com"},
			"password": {"secret123"},
		})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "Terjadi kesalahan pada server", body["message"])
	})
}
