package search

import (
	"sort"
	"strings"

	"github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
	"github.com/HKKoho/DocumentHub/internal/domain/search/result"
)

// Scoring weights per matched zone. Ministry and status do not score.
const (
	titleWeight      = 3
	docTypeWeight    = 2
	departmentWeight = 1
)

// Rank orders documents for presentation. With empty (or whitespace-only)
// search text every document is kept at score zero, newest first. With
// search text each document is scored against its locale rendering;
// zero-scoring documents are dropped and the rest sort by score descending.
// Both modes break ties by input order (timestamps are stored with
// millisecond precision, so same-instant creates are real). Renderings are
// computed per call and never cached, so ranking tracks dictionary changes.
func Rank(
	docs []document.Document, searchText string,
	loc locale.Locale, tr Translator,
) []result.Result {
	query := strings.ToLower(strings.TrimSpace(searchText))
	if query == "" {
		return rankByRecency(docs)
	}
	return rankByRelevance(docs, query, loc, tr)
}

func rankByRecency(docs []document.Document) []result.Result {
	out := make([]result.Result, 0, len(docs))
	for _, d := range docs {
		out = append(out, result.New(d, 0))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Document().CreatedAt().After(out[j].Document().CreatedAt())
	})
	return out
}

func rankByRelevance(
	docs []document.Document, query string,
	loc locale.Locale, tr Translator,
) []result.Result {
	out := make([]result.Result, 0, len(docs))
	for _, d := range docs {
		if score := scoreDocument(d, query, loc, tr); score > 0 {
			out = append(out, result.New(d, score))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}

// scoreDocument sums zone weights for each locale-rendered zone containing
// the query. query must already be lowercased.
func scoreDocument(
	d document.Document, query string,
	loc locale.Locale, tr Translator,
) int {
	score := 0
	if containsFold(tr.Title(loc, d.Title()), query) {
		score += titleWeight
	}
	if containsFold(tr.Label(loc, facet.DocType, d.Facet(facet.DocType)), query) {
		score += docTypeWeight
	}
	if containsFold(tr.Label(loc, facet.Department, d.Facet(facet.Department)), query) {
		score += departmentWeight
	}
	return score
}

func containsFold(s, query string) bool {
	return strings.Contains(strings.ToLower(s), query)
}
