package facet

import (
	"context"

	"github.com/HKKoho/DocumentHub/internal/domain/document"
	domfacet "github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
)

// Source loads the catalog documents (for the year listing).
type Source interface {
	All(ctx context.Context) ([]document.Document, error)
}

// Labeler renders facet values for a locale.
type Labeler interface {
	Label(loc locale.Locale, cat domfacet.Category, raw string) string
}
