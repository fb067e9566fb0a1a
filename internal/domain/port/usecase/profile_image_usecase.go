package usecase

import (
	"context"
	"io"
)

// ImageUpload describes an uploaded file as seen by the use case.
// ContentType is the client-reported MIME type and is only trusted as a
// permissive fallback when content sniffing is unavailable.
type ImageUpload struct {
	FileName    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// ProfileImageUseCase defines the profile image upload/delete logic
type ProfileImageUseCase interface {
	// Upload validates and stores the file, updates the user's image
	// reference, and returns the stored filename
	Upload(ctx context.Context, userID uint64, upload ImageUpload) (string, error)
	// Delete removes the user's stored image (best-effort) and clears the reference
	Delete(ctx context.Context, userID uint64) error
}
