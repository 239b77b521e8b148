package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/jirascope/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "issue.md")
		content := []byte("# Crash\n")
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("expected ErrIsDirectory, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.md")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantName string
	}{
		{name: "empty path", path: "", wantName: fsutil.StdinName},
		{name: "dash", path: "-", wantName: fsutil.StdinName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, info, err := fsutil.ReadInput(context.Background(), tt.path, strings.NewReader("*hi*\n"))
			if err != nil {
				t.Fatalf("ReadInput() error = %v", err)
			}
			if string(got) != "*hi*\n" {
				t.Errorf("content = %q", got)
			}
			if info.Path != tt.wantName {
				t.Errorf("Path = %q, want %q", info.Path, tt.wantName)
			}
		})
	}

	t.Run("file path ignores stdin", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.md")
		if err := os.WriteFile(path, []byte("file"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, _, err := fsutil.ReadInput(context.Background(), path, strings.NewReader("stdin"))
		if err != nil {
			t.Fatalf("ReadInput() error = %v", err)
		}
		if string(got) != "file" {
			t.Errorf("content = %q, want file", got)
		}
	})

	t.Run("nil stdin", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadInput(context.Background(), "-", nil)
		if !errors.Is(err, fsutil.ErrNoInput) {
			t.Errorf("expected ErrNoInput, got %v", err)
		}
	})
}
