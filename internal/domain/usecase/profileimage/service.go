package profileimage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/domain/port/persistence"
	storageport "github.com/fintrack-app/fintrack-backend/internal/domain/port/storage"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
)

// sniffLen is how many leading bytes the MIME detector gets to look at
const sniffLen = 3072

// Service implements the profile image upload/delete logic
type Service struct {
	users        persistence.UserRepository
	store        storageport.ImageStore
	detector     coreport.MIMEDetector // nil switches Upload to the permissive fallback
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new profile image service instance
func NewService(
	users persistence.UserRepository,
	store storageport.ImageStore,
	detector coreport.MIMEDetector,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecaseport.ProfileImageUseCase {
	return &Service{
		users:        users,
		store:        store,
		detector:     detector,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Upload validates the file, stores it under a name encoding owner and
// creation time, and points the user record at it. Validation order follows
// the contract: extension (authoritative), then content type, then size.
// A previously referenced file is removed best-effort once the pointer moves.
func (s *Service) Upload(ctx context.Context, userID uint64, upload usecaseport.ImageUpload) (string, error) {
	if userID == 0 {
		return "", errs.ErrInvalidUserID
	}
	if upload.FileName == "" || upload.Content == nil {
		return "", errs.ErrNoFileUploaded
	}

	ext := entity.ImageExtension(upload.FileName)
	if !entity.IsAllowedImageExtension(ext) {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidImageExtension, ext)
	}

	head, err := readHead(upload.Content)
	if err != nil {
		return "", errs.ErrNoFileUploaded
	}
	if err := s.checkContentType(head, upload.ContentType); err != nil {
		return "", err
	}

	if upload.Size > entity.MaxProfileImageSize {
		return "", errs.ErrImageTooLarge
	}

	filename := entity.ProfileImageFilename(userID, s.timeProvider.Now(), ext)
	content := io.MultiReader(bytes.NewReader(head), upload.Content)
	if err := s.store.Save(ctx, filename, content); err != nil {
		s.logger.Error("Failed to store uploaded image", map[string]any{
			"user_id":  userID,
			"filename": filename,
			"error":    err.Error(),
		})
		return "", fmt.Errorf("%w: %s", errs.ErrStorageFailure, err.Error())
	}

	previous := ""
	if user, err := s.users.GetByID(ctx, userID); err != nil {
		s.logger.Warn("Could not load user before image replace", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	} else if user.HasProfileImage() {
		previous = *user.ProfileImage
	}

	if err := s.users.UpdateProfileImage(ctx, userID, &filename); err != nil {
		s.logger.Error("Failed to update profile image reference", map[string]any{
			"user_id":  userID,
			"filename": filename,
			"error":    err.Error(),
		})
		return "", err
	}

	if previous != "" && previous != filename {
		if err := s.store.Remove(ctx, previous); err != nil {
			s.logger.Warn("Best-effort removal of replaced image failed", map[string]any{
				"user_id":  userID,
				"filename": previous,
				"error":    err.Error(),
			})
		}
	}

	s.logger.Info("Profile image uploaded", map[string]any{
		"user_id":  userID,
		"filename": filename,
	})
	return filename, nil
}

// checkContentType verifies the sniffed MIME type maps to an allowed
// extension. Without a detector it falls back to a permissive substring check
// on the client-reported type.
func (s *Service) checkContentType(head []byte, reportedType string) error {
	if s.detector != nil {
		detected := s.detector.Detect(head)
		if _, ok := entity.ExtensionForMIME(detected); !ok {
			return fmt.Errorf("%w: detected %s", errs.ErrImageTypeMismatch, detected)
		}
		return nil
	}

	if !bytes.Contains(bytes.ToLower([]byte(reportedType)), []byte("image")) {
		return fmt.Errorf("%w: reported %s", errs.ErrImageTypeMismatch, reportedType)
	}
	return nil
}

// readHead pulls the leading bytes off the upload stream for sniffing.
// The caller stitches them back in front of the remaining content.
func readHead(content io.Reader) ([]byte, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head[:n], nil
}

// Delete clears the user's image reference. Removing the underlying file is
// best-effort: the database update proceeds whatever the filesystem says.
func (s *Service) Delete(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Could not load user before image delete", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	} else if user.HasProfileImage() {
		if err := s.store.Remove(ctx, *user.ProfileImage); err != nil {
			s.logger.Warn("Best-effort image file removal failed", map[string]any{
				"user_id":  userID,
				"filename": *user.ProfileImage,
				"error":    err.Error(),
			})
		}
	}

	if err := s.users.UpdateProfileImage(ctx, userID, nil); err != nil {
		s.logger.Error("Failed to clear profile image reference", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("Profile image deleted", map[string]any{
		"user_id": userID,
	})
	return nil
}
