package profileimage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
	coremocks "github.com/fintrack-app/fintrack-backend/mocks/port/core"
	persistencemocks "github.com/fintrack-app/fintrack-backend/mocks/port/persistence"
	storagemocks "github.com/fintrack-app/fintrack-backend/mocks/port/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func pngUpload(size int64) usecaseport.ImageUpload {
	return usecaseport.ImageUpload{
		FileName:    "avatar.png",
		Size:        size,
		ContentType: "image/png",
		Content:     bytes.NewReader(pngHeader),
	}
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	expectedName := fmt.Sprintf("profile_7_%d.png", fixedTime.Unix())

	t.Run("Successful upload", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Run(func(ctx context.Context, filename string, content io.Reader) {
			// The stored stream must carry the sniffed head bytes too
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, pngHeader, data)
		}).Return(nil).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), mock.MatchedBy(func(name *string) bool {
			return name != nil && *name == expectedName
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		filename, err := service.Upload(ctx, 7, pngUpload(int64(len(pngHeader))))

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, expectedName, filename)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 0, pngUpload(8))

		// Assertions
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Missing file", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, usecaseport.ImageUpload{})

		// Assertions
		assert.ErrorIs(t, err, errs.ErrNoFileUploaded)
	})

	t.Run("Disallowed extension is rejected before any read", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, usecaseport.ImageUpload{
			FileName: "script.php",
			Size:     10,
			Content:  strings.NewReader("<?php"),
		})

		// Assertions
		assert.ErrorIs(t, err, errs.ErrInvalidImageExtension)
	})

	t.Run("Spoofed content behind an image extension", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("text/plain; charset=utf-8").Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, usecaseport.ImageUpload{
			FileName:    "evil.png",
			Size:        10,
			ContentType: "image/png",
			Content:     strings.NewReader("not an image"),
		})

		// Assertions
		assert.ErrorIs(t, err, errs.ErrImageTypeMismatch)
	})

	t.Run("Oversized file", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, pngUpload(entity.MaxProfileImageSize+1))

		// Assertions
		assert.ErrorIs(t, err, errs.ErrImageTooLarge)
	})

	t.Run("File at the size limit passes", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Return(nil).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, pngUpload(entity.MaxProfileImageSize))

		// Assertions
		require.NoError(t, err)
	})

	t.Run("Without a detector the reported type is trusted permissively", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Return(nil).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance without a detector
		service := NewService(mockUsers, mockStore, nil, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, pngUpload(int64(len(pngHeader))))

		// Assertions
		require.NoError(t, err)
	})

	t.Run("Without a detector a non-image reported type is rejected", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Create service instance without a detector
		service := NewService(mockUsers, mockStore, nil, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, usecaseport.ImageUpload{
			FileName:    "avatar.png",
			Size:        10,
			ContentType: "application/octet-stream",
			Content:     bytes.NewReader(pngHeader),
		})

		// Assertions
		assert.ErrorIs(t, err, errs.ErrImageTypeMismatch)
	})

	t.Run("Storage failure", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Return(errors.New("disk full")).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, pngUpload(int64(len(pngHeader))))

		// Assertions
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})

	t.Run("Database update failure after store", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		databaseError := errors.New("database update error")
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Return(nil).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), mock.Anything).Return(databaseError).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, pngUpload(int64(len(pngHeader))))

		// Assertions
		assert.Equal(t, databaseError, err)
	})

	t.Run("Replacing an image removes the previous file", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		previous := "profile_7_1600000000.jpg"
		storedUser := &entity.User{ID: 7, ProfileImage: &previous}

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Return(nil).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(storedUser, nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), mock.Anything).Return(nil).Once()
		mockStore.EXPECT().Remove(mock.Anything, previous).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		filename, err := service.Upload(ctx, 7, pngUpload(int64(len(pngHeader))))

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, expectedName, filename)
	})

	t.Run("Failed removal of the replaced file does not fail the upload", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		previous := "profile_7_1600000000.jpg"
		storedUser := &entity.User{ID: 7, ProfileImage: &previous}

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Return(nil).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(storedUser, nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), mock.Anything).Return(nil).Once()
		mockStore.EXPECT().Remove(mock.Anything, previous).Return(errs.ErrNotFound).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		_, err := service.Upload(ctx, 7, pngUpload(int64(len(pngHeader))))

		// Assertions
		require.NoError(t, err)
	})

	t.Run("Lookup failure before replace skips the removal", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockDetector.EXPECT().Detect(mock.Anything).Return("image/png").Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockStore.EXPECT().Save(mock.Anything, expectedName, mock.Anything).Return(nil).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errors.New("database error")).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		filename, err := service.Upload(ctx, 7, pngUpload(int64(len(pngHeader))))

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, expectedName, filename)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes the stored file and clears the reference", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		image := "profile_7_1700000000.png"
		storedUser := &entity.User{ID: 7, ProfileImage: &image}

		// Setup expectations
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(storedUser, nil).Once()
		mockStore.EXPECT().Remove(mock.Anything, image).Return(nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), (*string)(nil)).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		err := service.Delete(ctx, 7)

		// Assertions
		require.NoError(t, err)
	})

	t.Run("File removal failure still clears the reference", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		image := "profile_7_1700000000.png"
		storedUser := &entity.User{ID: 7, ProfileImage: &image}

		// Setup expectations
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(storedUser, nil).Once()
		mockStore.EXPECT().Remove(mock.Anything, image).Return(errs.ErrNotFound).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), (*string)(nil)).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		err := service.Delete(ctx, 7)

		// Assertions
		require.NoError(t, err)
	})

	t.Run("User without an image skips the filesystem", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), (*string)(nil)).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		err := service.Delete(ctx, 7)

		// Assertions
		require.NoError(t, err)
	})

	t.Run("Lookup failure still clears the reference", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errors.New("database error")).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		mockUsers.EXPECT().UpdateProfileImage(mock.Anything, uint64(7), (*string)(nil)).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		err := service.Delete(ctx, 7)

		// Assertions
		require.NoError(t, err)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		// Setup mocks
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockStore := storagemocks.NewMockImageStore(t)
		mockDetector := coremocks.NewMockMIMEDetector(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Create service instance
		service := NewService(mockUsers, mockStore, mockDetector, mockTime, mockLogger)

		// Execute
		err := service.Delete(ctx, 0)

		// Assertions
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
