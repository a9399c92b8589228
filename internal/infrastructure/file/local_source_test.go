package file_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rafaelmp/employee-import/internal/infrastructure/file"
)

func TestLocalSourceStoreReadRemove(t *testing.T) {
	t.Parallel()

	source := file.NewLocalSource(t.TempDir())
	ctx := context.Background()

	name, err := source.Store(ctx, "upload.csv", strings.NewReader("name,email\n"))
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}

	data, err := source.ReadAll(ctx, name)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "name,email\n" {
		t.Fatalf("unexpected content: %q", data)
	}

	if err := source.Remove(ctx, name); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := source.ReadAll(ctx, name); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist after removal, got %v", err)
	}
}

func TestLocalSourceRemoveMissingFile(t *testing.T) {
	t.Parallel()

	source := file.NewLocalSource(t.TempDir())
	if err := source.Remove(context.Background(), "already-gone.csv"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
