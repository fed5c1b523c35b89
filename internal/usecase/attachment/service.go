package attachment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HKKoho/DocumentHub/internal/domain"
	"github.com/HKKoho/DocumentHub/internal/metrics"
)

// allowedTypes maps accepted MIME types to their object key extensions.
// The catalog stores office documents and scans, nothing else.
var allowedTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.ms-excel": ".xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Defaults applied when config leaves the limits unset.
const (
	DefaultMaxSizeMB = 15
	DefaultURLExpiry = 5 * time.Minute
)

// Grant is a one-shot permission to upload a file directly to storage.
type Grant struct {
	URL       string
	Key       string
	ExpiresAt time.Time
}

// Service validates upload requests and issues presigned PUT URLs.
type Service struct {
	presigner    Presigner
	maxSizeBytes int64
	urlExpiry    time.Duration
	timeNow      func() time.Time
}

// New creates an attachment service. Zero limits fall back to defaults.
func New(p Presigner, maxSizeMB int, urlExpiry time.Duration) *Service {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}
	if urlExpiry <= 0 {
		urlExpiry = DefaultURLExpiry
	}
	return &Service{
		presigner:    p,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
		urlExpiry:    urlExpiry,
		timeNow:      time.Now,
	}
}

// Create validates the requested upload and returns a presigned grant.
// The object key is freshly generated; clients never choose their own keys.
func (s *Service) Create(ctx context.Context, fileName, contentType string, sizeBytes int64) (Grant, error) {
	ext, ok := allowedTypes[contentType]
	if !ok {
		metrics.UploadRejectionsTotal.WithLabelValues("content_type").Inc()
		return Grant{}, fmt.Errorf("content type %q not allowed: %w", contentType, domain.ErrAttachmentInvalid)
	}
	if fileName == "" {
		metrics.UploadRejectionsTotal.WithLabelValues("file_name").Inc()
		return Grant{}, fmt.Errorf("file name is required: %w", domain.ErrAttachmentInvalid)
	}
	if sizeBytes <= 0 {
		metrics.UploadRejectionsTotal.WithLabelValues("size").Inc()
		return Grant{}, fmt.Errorf("file size must be positive: %w", domain.ErrAttachmentInvalid)
	}
	if sizeBytes > s.maxSizeBytes {
		metrics.UploadRejectionsTotal.WithLabelValues("size").Inc()
		return Grant{}, fmt.Errorf(
			"file size %d exceeds limit %d: %w", sizeBytes, s.maxSizeBytes, domain.ErrAttachmentInvalid,
		)
	}

	key := "attachments/" + uuid.NewString() + ext
	url, err := s.presigner.PresignPut(ctx, key, contentType, sizeBytes, s.urlExpiry)
	if err != nil {
		metrics.UploadRejectionsTotal.WithLabelValues("presign").Inc()
		return Grant{}, fmt.Errorf("presign upload: %w", err)
	}

	metrics.UploadURLsIssuedTotal.WithLabelValues(contentType).Inc()
	return Grant{
		URL:       url,
		Key:       key,
		ExpiresAt: s.timeNow().Add(s.urlExpiry),
	}, nil
}
