package facet

import (
	"context"
	"fmt"
	"sort"

	domfacet "github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
)

// Entry pairs a canonical facet value with its localized display label.
type Entry struct {
	Value string
	Label string
}

// Listing is the localized vocabulary view that drives filter dropdowns.
// Years lists the publication years actually present in the catalog.
type Listing struct {
	Locale locale.Locale
	Facets map[domfacet.Category][]Entry
	Years  []int
}

// Service assembles localized facet listings.
type Service struct {
	vocab  domfacet.Vocabulary
	labels Labeler
	source Source
}

// New creates a facet service.
func New(vocab domfacet.Vocabulary, labels Labeler, source Source) *Service {
	return &Service{vocab: vocab, labels: labels, source: source}
}

// List returns every vocabulary value with its label for the locale, in
// vocabulary declaration order, plus the distinct catalog years newest
// first. Values the dictionary cannot render keep their canonical form.
func (s *Service) List(ctx context.Context, loc locale.Locale) (Listing, error) {
	facets := make(map[domfacet.Category][]Entry, len(domfacet.Categories()))
	for _, cat := range domfacet.Categories() {
		values := s.vocab.Values(cat)
		entries := make([]Entry, len(values))
		for i, v := range values {
			entries[i] = Entry{Value: v, Label: s.labels.Label(loc, cat, v)}
		}
		facets[cat] = entries
	}

	docs, err := s.source.All(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("load catalog: %w", err)
	}

	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, doc := range docs {
		if !seen[doc.Year()] {
			seen[doc.Year()] = true
			years = append(years, doc.Year())
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return Listing{Locale: loc.OrDefault(), Facets: facets, Years: years}, nil
}
