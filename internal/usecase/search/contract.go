package search

import (
	"context"

	"github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
)

// Source yields the catalog contents in insertion order.
type Source interface {
	All(ctx context.Context) ([]document.Document, error)
}

// Translator renders stored values for a display locale. Implementations
// must be total: a value without a translation, or an unknown locale,
// renders as the value itself.
type Translator interface {
	Title(loc locale.Locale, title string) string
	Label(loc locale.Locale, cat facet.Category, raw string) string
}
