// Package upload implements the file store on top of a gocloud blob bucket
// backed by the local filesystem.
package upload

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"hallcms/config"
	"hallcms/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobFileStore implements service.FileStore on a fileblob bucket.
type blobFileStore struct {
	bucket *blob.Bucket
}

// New opens (creating if needed) the configured uploads directory as a blob
// bucket and manages its lifetime through the fx lifecycle.
func New(params Params) (service.FileStore, error) {
	dir := "uploads"
	if params.Config.Uploads != nil && params.Config.Uploads.Dir != "" {
		dir = params.Config.Uploads.Dir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploads bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobFileStore{bucket: bucket}, nil
}

// Save writes the content under the given name, replacing any previous file.
func (s *blobFileStore) Save(ctx context.Context, name string, content io.Reader) error {
	if err := validateKey(name); err != nil {
		return err
	}

	w, err := s.bucket.NewWriter(ctx, name, nil)
	if err != nil {
		return errors.Wrap(err, "failed to open upload writer")
	}

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write upload")
	}

	return errors.Wrap(w.Close(), "failed to finalize upload")
}

// Delete removes the named file. Deleting a missing file is not an error.
func (s *blobFileStore) Delete(ctx context.Context, name string) error {
	if err := validateKey(name); err != nil {
		return err
	}

	err := s.bucket.Delete(ctx, name)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete upload")
	}

	return nil
}

// Exists reports whether the named file is present.
func (s *blobFileStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := validateKey(name); err != nil {
		return false, err
	}

	exists, err := s.bucket.Exists(ctx, name)
	if err != nil {
		return false, errors.Wrap(err, "failed to stat upload")
	}

	return exists, nil
}

// validateKey rejects names that could escape the bucket directory. Stored
// names are server-generated UUIDs, so anything with a separator is hostile.
func validateKey(name string) error {
	if name == "" ||
		strings.Contains(name, "/") ||
		strings.Contains(name, "\\") ||
		strings.Contains(name, "..") {
		return errors.Errorf("invalid file name: %q", name)
	}

	return nil
}
