package impl

import (
	"context"
	"strings"
	"testing"

	"hallcms/config"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUploadService(t *testing.T, store *mockFileStore) usecase.UploadUsecase {
	t.Helper()

	return NewUploadService(UploadServiceParams{
		Store:  store,
		Config: &config.Config{Uploads: &config.UploadsConfig{MaxImageSize: 10 << 20, MaxDocumentSize: 50 << 20}},
		Logger: newDiscardLogger(),
	})
}

func TestUploadService_SaveImage_GeneratesServerName(t *testing.T) {
	store := &mockFileStore{}
	service := createTestUploadService(t, store)

	var storedName string
	store.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) {
			storedName = args.String(1)
		}).
		Return(nil)

	output, err := service.SaveImage(context.Background(), usecase.UploadInput{
		Filename: "Hall Photo.JPG",
		Size:     2048,
		Content:  strings.NewReader("not really a jpeg"),
	})

	require.NoError(t, err)
	assert.Equal(t, storedName, output.Filename)
	assert.True(t, strings.HasSuffix(output.Filename, ".jpg"))
	assert.NotContains(t, output.Filename, "Hall")
	assert.Equal(t, "/api/uploads/"+output.Filename, output.URL)
	assert.Equal(t, int64(2048), output.Size)
}

func TestUploadService_SaveImage_RejectsDisallowedExtension(t *testing.T) {
	store := &mockFileStore{}
	service := createTestUploadService(t, store)

	output, err := service.SaveImage(context.Background(), usecase.UploadInput{
		Filename: "script.exe",
		Size:     10,
		Content:  strings.NewReader("MZ"),
	})

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FILE_TYPE_NOT_ALLOWED", appErr.ErrorCode())
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_SaveImage_RejectsOversize(t *testing.T) {
	store := &mockFileStore{}
	service := createTestUploadService(t, store)

	output, err := service.SaveImage(context.Background(), usecase.UploadInput{
		Filename: "huge.png",
		Size:     (10 << 20) + 1,
		Content:  strings.NewReader(""),
	})

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FILE_TOO_LARGE", appErr.ErrorCode())
}

// A PDF is fine as a document but not as an image.
func TestUploadService_ExtensionListsPerKind(t *testing.T) {
	store := &mockFileStore{}
	service := createTestUploadService(t, store)

	store.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil)

	output, err := service.SaveDocument(context.Background(), usecase.UploadInput{
		Filename: "agenda.pdf",
		Size:     100,
		Content:  strings.NewReader("%PDF"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(output.Filename, "_agenda.pdf"), "documents keep the original stem")
	assert.Equal(t, "agenda.pdf", output.OriginalName)

	_, err = service.SaveImage(context.Background(), usecase.UploadInput{
		Filename: "agenda.pdf",
		Size:     100,
		Content:  strings.NewReader("%PDF"),
	})
	assert.Error(t, err)
}

func TestUploadService_Delete_RejectsPathTraversal(t *testing.T) {
	store := &mockFileStore{}
	service := createTestUploadService(t, store)

	for _, filename := range []string{"", "../etc/passwd", "a/b.png", "a\\b.png", "..secret"} {
		err := service.Delete(context.Background(), filename)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr), "filename %q", filename)
		assert.Equal(t, "INVALID_FILENAME", appErr.ErrorCode(), "filename %q", filename)
	}

	store.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUploadService_Delete_MissingFile(t *testing.T) {
	store := &mockFileStore{}
	service := createTestUploadService(t, store)

	store.On("Exists", mock.Anything, "gone.png").Return(false, nil)

	err := service.Delete(context.Background(), "gone.png")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "File not found", appErr.Message())
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUploadService_Delete_Success(t *testing.T) {
	store := &mockFileStore{}
	service := createTestUploadService(t, store)

	store.On("Exists", mock.Anything, "keep.png").Return(true, nil)
	store.On("Delete", mock.Anything, "keep.png").Return(nil)

	err := service.Delete(context.Background(), "keep.png")

	require.NoError(t, err)
	store.AssertExpectations(t)
}
