// Package fsutil reads conversion inputs and writes outputs safely.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinName is the display name used for input read from standard input.
const StdinName = "<stdin>"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNoInput indicates that standard input was requested but none was given.
	ErrNoInput = errors.New("no input")
)

// FileInfo captures the state of a file when it was read.
type FileInfo struct {
	// Path is the path the file was read from, or StdinName.
	Path string

	// Mode is the file's permission and mode bits. Zero for stdin.
	Mode os.FileMode

	// Size is the content size in bytes.
	Size int64
}

// IsStdin reports whether path names standard input.
func IsStdin(path string) bool {
	return path == "" || path == "-"
}

// ReadFile reads a file and returns its content along with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}

	return content, &FileInfo{
		Path: path,
		Mode: stat.Mode(),
		Size: int64(len(content)),
	}, nil
}

// ReadInput reads path, or stdin when path is empty or "-".
func ReadInput(ctx context.Context, path string, stdin io.Reader) ([]byte, *FileInfo, error) {
	if !IsStdin(path) {
		return ReadFile(ctx, path)
	}

	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read stdin: %w", ctx.Err())
	default:
	}

	if stdin == nil {
		return nil, nil, ErrNoInput
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}

	return content, &FileInfo{Path: StdinName, Size: int64(len(content))}, nil
}

func classify(path, op string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
