package usecase

import (
	"context"
	"io"
)

// UploadInput describes an incoming file upload.
type UploadInput struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// UploadOutput describes a stored file.
type UploadOutput struct {
	Filename     string
	OriginalName string
	URL          string
	Size         int64
	ContentType  string
}

// UploadUsecase stores and removes uploaded files. Images and documents have
// separate extension whitelists and size caps.
type UploadUsecase interface {
	// SaveImage stores an image upload under a server-generated name.
	SaveImage(ctx context.Context, input UploadInput) (*UploadOutput, error)

	// SaveDocument stores a document upload under a server-generated name.
	SaveDocument(ctx context.Context, input UploadInput) (*UploadOutput, error)

	// Delete removes a stored file by its server-generated name.
	Delete(ctx context.Context, filename string) error
}
