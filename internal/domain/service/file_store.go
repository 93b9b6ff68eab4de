package service

import (
	"context"
	"io"
)

// FileStore persists uploaded files under server-generated names and serves
// them back by name. Implementations must reject names that escape the store.
type FileStore interface {
	// Save writes the content under the given name, replacing any previous file.
	Save(ctx context.Context, name string, content io.Reader) error

	// Delete removes the named file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether the named file is present.
	Exists(ctx context.Context, name string) (bool, error)
}
