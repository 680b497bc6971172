package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"filehub-api/internal/apperr"
)

// ErrBlobNotFound distinguishes an absent blob from a read failure.
var ErrBlobNotFound = errors.New("blob not found")

// BlobService persists raw file content on local disk under a single
// root directory. Paths are generated, never derived from user input.
type BlobService struct {
	root string
}

func NewBlobService(root string) (*BlobService, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &BlobService{root: root}, nil
}

// Root returns the configured root directory.
func (s *BlobService) Root() string {
	return s.root
}

// Write decodes the base64 payload and persists it at a fresh unique
// path, which it returns.
func (s *BlobService) Write(base64Data string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return "", apperr.BadRequest("Missing data")
	}

	path := filepath.Join(s.root, uuid.NewString())
	// Generated names are unique; an existing file here means the
	// generator was violated, not that the caller raced us.
	if _, err := os.Stat(path); err == nil {
		return "", apperr.Internal("File already exists")
	}

	if err := os.WriteFile(path, raw, 0600); err != nil {
		return "", apperr.Internal("Failed to store file")
	}
	return path, nil
}

// Read returns the bytes at path. ErrBlobNotFound covers absence; any
// other failure is a storage error.
func (s *BlobService) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, apperr.Internal("Cannot read the file")
	}
	return data, nil
}

// VariantPath is where a resized copy of the blob at path lives for
// the given width class.
func (s *BlobService) VariantPath(path string, size int) string {
	return fmt.Sprintf("%s_%d", path, size)
}

// WriteVariant persists a derived variant beside the original,
// overwriting any previous copy.
func (s *BlobService) WriteVariant(path string, size int, data []byte) error {
	if err := os.WriteFile(s.VariantPath(path, size), data, 0600); err != nil {
		return apperr.Internal("Failed to store thumbnail")
	}
	return nil
}
