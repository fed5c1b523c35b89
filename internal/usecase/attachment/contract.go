package attachment

import (
	"context"
	"time"
)

// Presigner signs direct-upload PUT URLs against object storage.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, sizeBytes int64, expiry time.Duration) (string, error)
}
