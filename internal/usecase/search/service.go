package search

import (
	"context"
	"fmt"
	"time"

	"github.com/HKKoho/DocumentHub/internal/domain"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
	"github.com/HKKoho/DocumentHub/internal/domain/search/criteria"
	"github.com/HKKoho/DocumentHub/internal/domain/search/mode"
	"github.com/HKKoho/DocumentHub/internal/domain/search/result"
	"github.com/HKKoho/DocumentHub/internal/metrics"
)

// Service runs faceted catalog searches: filter on exact facet selections,
// then rank by relevance or recency. It holds no state between calls and
// is safe for concurrent use.
type Service struct {
	source Source
	tr     Translator
	vocab  facet.Vocabulary
}

// New creates a search service.
func New(source Source, tr Translator, vocab facet.Vocabulary) *Service {
	return &Service{source: source, tr: tr, vocab: vocab}
}

// Search filters the catalog by the criteria, then ranks the survivors.
// Facet selections outside the vocabulary are rejected before any work.
func (s *Service) Search(
	ctx context.Context, c criteria.Criteria, loc locale.Locale,
) ([]result.Result, error) {
	m := string(mode.ForQuery(c.SearchText()))

	if err := s.validateSelections(c); err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(m, "rejected").Inc()
		return nil, err
	}

	start := time.Now()

	docs, err := s.source.All(ctx)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(m, "error").Inc()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	results := Rank(Filter(docs, c), c.SearchText(), loc, s.tr)

	metrics.SearchRequestsTotal.WithLabelValues(m, "ok").Inc()
	metrics.SearchDuration.WithLabelValues(m).Observe(time.Since(start).Seconds())
	metrics.SearchResultsReturned.WithLabelValues(m).Observe(float64(len(results)))

	return results, nil
}

// validateSelections checks each constrained facet against the vocabulary.
// The year constraint is validated structurally at criteria construction
// and intentionally not checked here: any integer year is searchable.
func (s *Service) validateSelections(c criteria.Criteria) error {
	for _, cat := range facet.Categories() {
		if v, ok := c.Selection(cat); ok && !s.vocab.Contains(cat, v) {
			return domain.NewInvalidFacet(string(cat), v)
		}
	}
	return nil
}
