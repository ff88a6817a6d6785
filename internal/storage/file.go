package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teenbridge/skillbridge/internal/common"
	"github.com/teenbridge/skillbridge/internal/filex"
)

// FileStorage implements Storage with one file per slot inside a data
// directory. Slot keys map directly to file names, so keys must be plain
// names without path separators.
type FileStorage struct {
	dir string
}

// NewFileStorage returns a FileStorage rooted at dir, creating the
// directory when missing.
func NewFileStorage(dir string) (*FileStorage, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("init storage dir: %w", err)
	}
	return &FileStorage{dir: abs}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get reads the full value of the slot. A missing slot yields common.ErrNotFound.
func (s *FileStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("slot %s: %w", key, common.ErrNotFound)
		}
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return data, nil
}

// Set overwrites the slot with value, creating it when missing.
func (s *FileStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(s.path(key), value, 0o660); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is a no-op.
func (s *FileStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}
