package storage

import (
	"context"
	"io"
)

// StorageProvider stores uploaded vehicle images, license documents and
// profile pictures. The returned URL is what gets persisted on the record.
type StorageProvider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	FileExists(ctx context.Context, key string) (bool, error)
}

type UploadRequest struct {
	Key         string    `json:"key"`
	Reader      io.Reader `json:"-"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
}

type UploadResponse struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Location string `json:"location"`
}
