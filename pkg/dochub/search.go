package dochub

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/HKKoho/DocumentHub/internal/domain/locale"
	"github.com/HKKoho/DocumentHub/internal/domain/search/criteria"
)

// SearchBuilder builds a catalog search fluently. Facet selections are
// exact matches against stored values; unset facets match everything.
// With a query, results are ranked by label relevance in the chosen
// locale; without one they are ordered newest-first.
type SearchBuilder struct {
	svc searchUseCase
	obs *observer

	query      string
	department string
	ministry   string
	docType    string
	status     string
	year       string
	locale     string
}

// Query sets the free-text query matched against titles and facet labels.
func (b *SearchBuilder) Query(q string) *SearchBuilder {
	b.query = q
	return b
}

// Department restricts results to one department.
func (b *SearchBuilder) Department(v string) *SearchBuilder {
	b.department = v
	return b
}

// Ministry restricts results to one ministry.
func (b *SearchBuilder) Ministry(v string) *SearchBuilder {
	b.ministry = v
	return b
}

// DocType restricts results to one document type.
func (b *SearchBuilder) DocType(v string) *SearchBuilder {
	b.docType = v
	return b
}

// Status restricts results to one workflow status.
func (b *SearchBuilder) Status(v string) *SearchBuilder {
	b.status = v
	return b
}

// Year restricts results to one publication year.
func (b *SearchBuilder) Year(y int) *SearchBuilder {
	b.year = strconv.Itoa(y)
	return b
}

// Locale sets the locale used for matching and returned labels.
// Unknown locales fall back to the stored English values.
func (b *SearchBuilder) Locale(loc string) *SearchBuilder {
	b.locale = loc
	return b
}

// Do runs the search.
func (b *SearchBuilder) Do(ctx context.Context) (hits []SearchHit, err error) {
	start := time.Now()
	defer func() { b.obs.observe("search", start, err) }()

	c, err := criteria.New(b.query, criteria.Selections{
		Department: b.department,
		Ministry:   b.ministry,
		DocType:    b.docType,
		Status:     b.status,
		Year:       b.year,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results, err := b.svc.Search(ctx, c, locale.Locale(b.locale))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits = make([]SearchHit, len(results))
	for i, r := range results {
		hits[i] = SearchHit{
			Document: fromInternalDocument(r.Document()),
			Score:    r.Score(),
		}
	}
	return hits, nil
}
