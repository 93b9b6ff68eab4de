package handler

import (
	"context"
	"log/slog"
	"net/http"

	"hallcms/internal/delivery/http/response"
	"hallcms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for file-upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

type uploadResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name,omitempty"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

// UploadImage stores an image from a multipart form under the "file" field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	return h.upload(c, h.uc.SaveImage)
}

// UploadDocument stores a document from a multipart form under the "file" field.
func (h *UploadHandler) UploadDocument(c echo.Context) error {
	return h.upload(c, h.uc.SaveDocument)
}

func (h *UploadHandler) upload(c echo.Context, save func(context.Context, usecase.UploadInput) (*usecase.UploadOutput, error)) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	output, err := save(c.Request().Context(), usecase.UploadInput{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, uploadResponse{
		Filename:     output.Filename,
		OriginalName: output.OriginalName,
		URL:          output.URL,
		Size:         output.Size,
		ContentType:  output.ContentType,
	}, "File uploaded")
}

// Delete removes a stored file by its server-generated name.
func (h *UploadHandler) Delete(c echo.Context) error {
	filename := c.Param("filename")

	if err := h.uc.Delete(c.Request().Context(), filename); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "File deleted successfully"}, "File deleted successfully")
}
