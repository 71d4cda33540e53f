package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage implements Storage backed by a directory on disk.
type LocalStorage struct {
	dir string
}

// NewLocalStorage returns a LocalStorage writing into dir.
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (s *LocalStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
