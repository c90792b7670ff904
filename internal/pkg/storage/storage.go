package storage

import (
	"context"
	"io"
)

// Storage is where generated report files end up.
type Storage interface {
	// Save writes content under the given relative path, replacing any
	// previous file.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens a previously saved file for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a saved file. Deleting a missing file is not an
	// error.
	Delete(ctx context.Context, path string) error
}
