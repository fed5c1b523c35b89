package result

import "github.com/HKKoho/DocumentHub/internal/domain/document"

// Result is a single search hit: the matched document and its relevance
// score. Recency-ordered results carry a zero score.
type Result struct {
	doc   document.Document
	score int
}

// New creates a search result.
func New(doc document.Document, score int) Result {
	return Result{doc: doc, score: score}
}

// Document returns the matched document.
func (r Result) Document() document.Document { return r.doc }

// Score returns the relevance score.
func (r Result) Score() int { return r.score }
