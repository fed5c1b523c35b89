package search

import (
	"github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/search/criteria"
)

// Filter returns the documents satisfying every constrained facet of the
// criteria (AND semantics). Matching is exact and case-sensitive on raw
// stored values; an unconstrained facet matches everything. The input
// slice is never mutated and its order is preserved.
func Filter(docs []document.Document, c criteria.Criteria) []document.Document {
	out := make([]document.Document, 0, len(docs))
	for _, d := range docs {
		if matches(d, c) {
			out = append(out, d)
		}
	}
	return out
}

func matches(d document.Document, c criteria.Criteria) bool {
	for _, cat := range facet.Categories() {
		if want, ok := c.Selection(cat); ok && d.Facet(cat) != want {
			return false
		}
	}
	if want, ok := c.Year(); ok && d.Year() != want {
		return false
	}
	return true
}
