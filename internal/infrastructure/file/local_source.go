package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalSource reads, stores, and disposes of uploaded files on local disk.
type LocalSource struct {
	BaseDir string
}

func NewLocalSource(baseDir string) *LocalSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalSource{BaseDir: baseDir}
}

func (s *LocalSource) resolve(sourcePath string) string {
	if filepath.IsAbs(sourcePath) {
		return sourcePath
	}
	return filepath.Join(s.BaseDir, sourcePath)
}

// ReadAll returns the whole file. os.ErrNotExist stays reachable through
// the error chain so callers can classify a missing file.
func (s *LocalSource) ReadAll(ctx context.Context, sourcePath string) ([]byte, error) {
	_ = ctx

	path := s.resolve(sourcePath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return data, nil
}

// Store writes an uploaded stream under the base dir and returns the
// relative source path for the job record.
func (s *LocalSource) Store(ctx context.Context, name string, src io.Reader) (string, error) {
	_ = ctx

	if err := os.MkdirAll(s.BaseDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir %s: %w", s.BaseDir, err)
	}

	path := filepath.Join(s.BaseDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file %s: %w", path, err)
	}
	return name, nil
}

// Remove deletes the file if it still exists. Removing an already-removed
// file is not an error; cleanup runs on every import exit path.
func (s *LocalSource) Remove(ctx context.Context, sourcePath string) error {
	_ = ctx

	path := s.resolve(sourcePath)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file %s: %w", path, err)
	}
	return nil
}
