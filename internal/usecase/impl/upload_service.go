package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"hallcms/config"
	deliverycontext "hallcms/internal/delivery/context"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/service"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxImageSize    = 10 << 20 // 10 MB
	defaultMaxDocumentSize = 50 << 20 // 50 MB
)

var (
	imageExtensions    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true}
	documentExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	store           service.FileStore
	maxImageSize    int64
	maxDocumentSize int64
	logger          *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Store  service.FileStore
	Config *config.Config
	Logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxImage := int64(defaultMaxImageSize)
	maxDocument := int64(defaultMaxDocumentSize)
	if params.Config != nil && params.Config.Uploads != nil {
		if params.Config.Uploads.MaxImageSize > 0 {
			maxImage = params.Config.Uploads.MaxImageSize
		}
		if params.Config.Uploads.MaxDocumentSize > 0 {
			maxDocument = params.Config.Uploads.MaxDocumentSize
		}
	}

	return &uploadService{
		store:           params.Store,
		maxImageSize:    maxImage,
		maxDocumentSize: maxDocument,
		logger:          params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveImage stores an image upload under a server-generated name.
func (srv *uploadService) SaveImage(ctx context.Context, input usecase.UploadInput) (*usecase.UploadOutput, error) {
	return srv.save(ctx, input, imageExtensions, srv.maxImageSize, false)
}

// SaveDocument stores a document upload. The stored name keeps the original
// name stem so admins can recognize documents in the library.
func (srv *uploadService) SaveDocument(ctx context.Context, input usecase.UploadInput) (*usecase.UploadOutput, error) {
	return srv.save(ctx, input, documentExtensions, srv.maxDocumentSize, true)
}

func (srv *uploadService) save(ctx context.Context, input usecase.UploadInput, allowed map[string]bool, maxSize int64, keepStem bool) (*usecase.UploadOutput, error) {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if !allowed[ext] {
		return nil, domainerrors.NewBaseError(
			http.StatusBadRequest,
			"FILE_TYPE_NOT_ALLOWED",
			fmt.Sprintf("File type %s not allowed", ext),
			"",
		)
	}

	if input.Size > maxSize {
		return nil, domainerrors.NewBaseError(
			http.StatusBadRequest,
			"FILE_TOO_LARGE",
			fmt.Sprintf("File exceeds the %d MB limit", maxSize>>20),
			"",
		)
	}

	// Server-generated name: a UUID prefix so the client filename never
	// collides or traverses; documents keep the original stem for recognition.
	name := uuid.New().String()
	originalName := ""
	if keepStem {
		originalName = input.Filename
		if stem := sanitizeStem(input.Filename); stem != "" {
			name += "_" + stem
		}
	}
	name += ext

	if err := srv.store.Save(ctx, name, input.Content); err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	srv.log(ctx).Info("File uploaded",
		slog.String("filename", name),
		slog.Int64("size", input.Size),
	)

	return &usecase.UploadOutput{
		Filename:     name,
		OriginalName: originalName,
		URL:          "/api/uploads/" + name,
		Size:         input.Size,
		ContentType:  input.ContentType,
	}, nil
}

// sanitizeStem strips path components and separators from a client filename.
func sanitizeStem(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.ReplaceAll(stem, "..", "")

	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return -1
		default:
			return r
		}
	}, stem)
}

// Delete removes a stored file by its server-generated name. Names carrying
// path separators are rejected before reaching the store.
func (srv *uploadService) Delete(ctx context.Context, filename string) error {
	if filename == "" ||
		strings.Contains(filename, "/") ||
		strings.Contains(filename, "\\") ||
		strings.Contains(filename, "..") {
		return domainerrors.NewBaseError(
			http.StatusBadRequest,
			"INVALID_FILENAME",
			"Invalid filename",
			"",
		)
	}

	exists, err := srv.store.Exists(ctx, filename)
	if err != nil {
		return errors.Wrap(err, "failed to stat upload")
	}
	if !exists {
		return domainerrors.NotFound("File not found")
	}

	if err := srv.store.Delete(ctx, filename); err != nil {
		return errors.Wrap(err, "failed to delete upload")
	}

	srv.log(ctx).Info("File deleted", slog.String("filename", filename))

	return nil
}
