package dochub

import (
	"context"
	"fmt"
	"time"
)

// AttachmentService issues pre-signed upload URLs for document files.
type AttachmentService struct {
	svc attachmentUseCase
	obs *observer
}

// CreateUploadURL validates the file metadata and returns a pre-signed
// PUT URL together with the object key to record on the document.
// Returns ErrAttachmentsDisabled when the client was built without
// storage (see WithS3Storage and WithPresigner).
func (s *AttachmentService) CreateUploadURL(ctx context.Context, fileName, contentType string, sizeBytes int64) (grant UploadGrant, err error) {
	start := time.Now()
	defer func() { s.obs.observe("create_upload_url", start, err) }()

	if s.svc == nil {
		err = fmt.Errorf("create upload url: %w", ErrAttachmentsDisabled)
		return UploadGrant{}, err
	}

	g, err := s.svc.Create(ctx, fileName, contentType, sizeBytes)
	if err != nil {
		return UploadGrant{}, fmt.Errorf("create upload url: %w", err)
	}
	return UploadGrant{URL: g.URL, Key: g.Key, ExpiresAt: g.ExpiresAt}, nil
}
