package document

import (
	"context"

	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
)

// Repository defines the storage contract for catalog documents.
// Create assigns the insertion sequence and returns the stored copy.
type Repository interface {
	Create(ctx context.Context, doc domdoc.Document) (domdoc.Document, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	List(ctx context.Context, cursor string, limit int) (
		docs []domdoc.Document, nextCursor string, err error,
	)
	Count(ctx context.Context) (int, error)
}
