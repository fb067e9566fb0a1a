package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coremocks "github.com/fintrack-app/fintrack-backend/mocks/port/core"
	persistencemocks "github.com/fintrack-app/fintrack-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful login", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockLogger := coremocks.NewMockLogger(t)

		image := "profile_42_1700000000.png"
		storedUser := &entity.User{
			ID:           42,
			Name:         "Budi",
			Email:        "budi@example.com",
			PasswordHash: "$2a$10$hash",
			ProfileImage: &image,
		}

		// Setup expectations
		mockRepo.EXPECT().GetByEmail(mock.Anything, "budi@example.com").Return(storedUser, nil).Once()
		mockHasher.EXPECT().Verify("$2a$10$hash", "secret123").Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create use case instance
		authUseCase := NewAuthUseCase(mockRepo, mockHasher, mockLogger)

		// Execute
		result, err := authUseCase.Login(ctx, "budi@example.com", "secret123")

		// Assertions
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint64(42), result.UserID)
		assert.Equal(t, "Budi", result.Name)
		assert.Equal(t, "budi@example.com", result.Email)
		require.NotNil(t, result.ProfileImage)
		assert.Equal(t, image, *result.ProfileImage)
	})

	t.Run("Missing email or password", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Create use case instance
		authUseCase := NewAuthUseCase(mockRepo, mockHasher, mockLogger)

		// Execute
		result, err := authUseCase.Login(ctx, "", "secret123")

		// Assertions
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMissingFields)

		result, err = authUseCase.Login(ctx, "budi@example.com", "")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Unknown email", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		// Create use case instance
		authUseCase := NewAuthUseCase(mockRepo, mockHasher, mockLogger)

		// Execute
		result, err := authUseCase.Login(ctx, "ghost@example.com", "secret123")

		// Assertions
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Wrong password", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockLogger := coremocks.NewMockLogger(t)

		storedUser := &entity.User{
			ID:           42,
			Email:        "budi@example.com",
			PasswordHash: "$2a$10$hash",
		}

		// Setup expectations
		mockRepo.EXPECT().GetByEmail(mock.Anything, "budi@example.com").Return(storedUser, nil).Once()
		mockHasher.EXPECT().Verify("$2a$10$hash", "wrong").Return(errors.New("mismatch")).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		// Create use case instance
		authUseCase := NewAuthUseCase(mockRepo, mockHasher, mockLogger)

		// Execute
		result, err := authUseCase.Login(ctx, "budi@example.com", "wrong")

		// Assertions
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredential)
	})

	t.Run("Database error during lookup", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := coremocks.NewMockPasswordHasher(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		databaseError := errors.New("database connection error")
		mockRepo.EXPECT().GetByEmail(mock.Anything, "budi@example.com").Return(nil, databaseError).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		// Create use case instance
		authUseCase := NewAuthUseCase(mockRepo, mockHasher, mockLogger)

		// Execute
		result, err := authUseCase.Login(ctx, "budi@example.com", "secret123")

		// Assertions
		assert.Nil(t, result)
		assert.Equal(t, databaseError, err)
	})
}
