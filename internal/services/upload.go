package services

import (
	"context"
	"errors"
	"io"

	"yatra/internal/utils"
	"yatra/pkg/storage"
)

var (
	ErrImageRequired       = errors.New("vehicle image is required")
	ErrInvalidImageType    = errors.New("invalid image type, allowed: jpg, jpeg, png, gif, webp")
	ErrInvalidDocumentType = errors.New("invalid document type, allowed: pdf, jpg, jpeg, png")
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
)

// FileInput is an uploaded file handed down from the HTTP layer.
type FileInput struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

func uploadImage(ctx context.Context, store storage.StorageProvider, prefix string, file *FileInput) (string, error) {
	if !utils.IsImageFile(file.Filename) {
		return "", ErrInvalidImageType
	}
	if file.Size > utils.MaxImageSize {
		return "", ErrFileTooLarge
	}
	return uploadFile(ctx, store, prefix, file)
}

func uploadDocument(ctx context.Context, store storage.StorageProvider, prefix string, file *FileInput) (string, error) {
	if !utils.IsDocumentFile(file.Filename) {
		return "", ErrInvalidDocumentType
	}
	if file.Size > utils.MaxDocumentSize {
		return "", ErrFileTooLarge
	}
	return uploadFile(ctx, store, prefix, file)
}

func uploadFile(ctx context.Context, store storage.StorageProvider, prefix string, file *FileInput) (string, error) {
	resp, err := store.Upload(ctx, &storage.UploadRequest{
		Key:         prefix + utils.GenerateUniqueFilename(file.Filename),
		Reader:      file.Reader,
		ContentType: file.ContentType,
		Size:        file.Size,
	})
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}
