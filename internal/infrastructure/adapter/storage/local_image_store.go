package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	storageport "github.com/fintrack-app/fintrack-backend/internal/domain/port/storage"
	"github.com/spf13/afero"
)

// LocalImageStore keeps image files under a single uploads root on an afero
// filesystem. Tests run it against an in-memory Fs.
type LocalImageStore struct {
	fs     afero.Fs
	root   string
	logger coreport.Logger
}

// NewLocalImageStore creates an image store rooted at the given directory
func NewLocalImageStore(fs afero.Fs, root string, logger coreport.Logger) *LocalImageStore {
	return &LocalImageStore{
		fs:     fs,
		root:   root,
		logger: logger,
	}
}

// resolve joins the basename of a client-supplied name to the storage root.
// Stripping directory components here is the sole traversal defense, so every
// path the store touches must come through this function.
func (s *LocalImageStore) resolve(filename string) string {
	return filepath.Join(s.root, filepath.Base(filename))
}

// Save writes the content under the given filename, creating the uploads root
// on first use
func (s *LocalImageStore) Save(ctx context.Context, filename string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create uploads directory: %w", err)
	}

	path := s.resolve(filename)
	if err := afero.WriteReader(s.fs, path, content); err != nil {
		return fmt.Errorf("write image file: %w", err)
	}

	s.logger.Debug("Image file stored", map[string]any{
		"path": path,
	})
	return nil
}

// Remove deletes the stored file
func (s *LocalImageStore) Remove(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.resolve(filename)
	if err := s.fs.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

// Open returns a reader over the stored file and its size in bytes
func (s *LocalImageStore) Open(filename string) (io.ReadCloser, int64, error) {
	path := s.resolve(filename)

	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errs.ErrNotFound
		}
		return nil, 0, fmt.Errorf("stat image file: %w", err)
	}

	file, err := s.fs.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open image file: %w", err)
	}
	return file, info.Size(), nil
}

// Interface guard
var _ storageport.ImageStore = (*LocalImageStore)(nil)
