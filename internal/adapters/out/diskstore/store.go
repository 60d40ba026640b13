// Package diskstore implements the document store port on the local
// filesystem for development setups without object storage.
package diskstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes documents under a base directory, one file per key.
type Store struct {
	baseDir   string
	publicURL string
}

// NewStore creates a disk-backed document store rooted at baseDir.
func NewStore(baseDir string, publicURL string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create document dir %s: %w", baseDir, err)
	}

	return &Store{
		baseDir:   baseDir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// Put stores a document under the given key, overwriting any previous
// content. The content type is ignored on disk.
func (s *Store) Put(_ context.Context, key string, content []byte, _ string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", key, err)
	}

	if err = os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}

	return nil
}

// Get retrieves a previously stored document.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", key, err)
	}

	return content, nil
}

// URL returns a link under which the document can be fetched.
func (s *Store) URL(key string) string {
	return s.publicURL + "/" + key
}

// path maps a key onto the base directory, rejecting traversal outside it.
func (s *Store) path(key string) (string, error) {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid document key %q", key)
	}

	return path, nil
}
