package service

import (
	"context"
	"io"
)

// UploadResult describes a stored image after a successful upload.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// UploadService proxies image uploads to the media storage backend. The
// backend owns validation, sizing and the final URL; this service only
// relays the stream and the outcome.
type UploadService interface {
	// UploadImage relays one image file to the storage backend.
	UploadImage(ctx context.Context, filename, contentType string, size int64, content io.Reader) (*UploadResult, error)
}
