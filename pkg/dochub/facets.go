package dochub

import (
	"context"
	"fmt"
	"time"

	"github.com/HKKoho/DocumentHub/internal/domain/locale"
)

// FacetService lists the controlled facet vocabulary.
type FacetService struct {
	svc facetUseCase
	obs *observer
}

// List returns every facet category with its allowed values, labelled
// for the locale, plus the distinct publication years present in the
// catalog (newest first).
func (s *FacetService) List(ctx context.Context, loc string) (listing FacetListing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("list_facets", start, err) }()

	l, err := s.svc.List(ctx, locale.Locale(loc))
	if err != nil {
		return FacetListing{}, fmt.Errorf("list facets: %w", err)
	}

	facets := make(map[string][]FacetEntry, len(l.Facets))
	for cat, entries := range l.Facets {
		out := make([]FacetEntry, len(entries))
		for i, e := range entries {
			out[i] = FacetEntry{Value: e.Value, Label: e.Label}
		}
		facets[string(cat)] = out
	}
	return FacetListing{
		Locale: string(l.Locale),
		Facets: facets,
		Years:  l.Years,
	}, nil
}
