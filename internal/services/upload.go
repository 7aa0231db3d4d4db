package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-insight/internal/apperrors"
	"alfredoptarigan/resume-insight/internal/models"
)

// UploadService validates resume uploads and opens them for reading. Files
// are streamed from the request and never written to disk.
type UploadService interface {
	Open(file *multipart.FileHeader) (*models.UploadedDocument, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) Open(file *multipart.FileHeader) (*models.UploadedDocument, error) {
	if file == nil {
		return nil, fmt.Errorf("no file uploaded: %w", apperrors.ErrMissingInput)
	}

	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("invalid file extension %q: %w", ext, apperrors.ErrDocumentFormat)
	}

	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: max size %d bytes", apperrors.ErrFileTooLarge, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	return &models.UploadedDocument{
		Reader:       src,
		OriginalName: file.Filename,
		Size:         file.Size,
	}, nil
}
