package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrInvalidKey = errors.New("invalid storage key")

// LogoStore persists bytes under a key
type LogoStore interface {
	Write(ctx context.Context, key string, r io.Reader) error
	Remove(ctx context.Context, key string) error
}

// FileStore writes logos to a directory on the local filesystem.
// Writes are atomic per key; a later write replaces an earlier one.
type FileStore struct {
	root    string
	once    sync.Once
	rootErr error
}

// NewFileStore creates a store rooted at dir. The directory is created on first write.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Root returns the storage directory
func (s *FileStore) Root() string {
	return s.root
}

// Path returns the absolute location of key inside the root
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.root, key)
}

func (s *FileStore) ensureRoot() error {
	s.once.Do(func() {
		if err := os.MkdirAll(s.root, 0o755); err != nil {
			s.rootErr = fmt.Errorf("could not create storage root %s: %w", s.root, err)
		}
	})
	return s.rootErr
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Write stores the content of r under key
func (s *FileStore) Write(ctx context.Context, key string, r io.Reader) error {
	if err := validKey(key); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.ensureRoot(); err != nil {
		return err
	}

	tmp := filepath.Join(s.root, "."+key+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, &contextReader{ctx: ctx, r: r}); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", key, err)
	}

	if err := os.Rename(tmp, s.Path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", key, err)
	}

	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	return nil
}

// contextReader stops a copy once the request is cancelled
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
