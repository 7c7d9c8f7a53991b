package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vbonduro/lostfound/internal/photostore"
)

// Store keeps photos on the local filesystem and hands back app-relative
// URLs served by the web layer. It is the development backend; production
// deployments use the s3 store.
type Store struct {
	basePath string
}

func New(basePath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(basePath, "posts"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

func (s *Store) Upload(_ context.Context, data []byte, filename string) (string, error) {
	key := photostore.NewKey(filename)
	path, err := s.safeJoin(key)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return "/photos/" + key, nil
}

func (s *Store) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	path, err := s.safeJoin(key)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("photo not found: %s", key)
		}
		return nil, "", fmt.Errorf("failed to open photo: %w", err)
	}
	return f, photostore.ContentType(photostore.Ext(key)), nil
}

// safeJoin resolves key relative to basePath and rejects directory traversal.
func (s *Store) safeJoin(key string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.basePath, key))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
