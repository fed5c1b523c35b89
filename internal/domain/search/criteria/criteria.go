package criteria

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HKKoho/DocumentHub/internal/domain"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
)

// MaxSearchTextLength is the maximum allowed search text length.
const MaxSearchTextLength = 4096

// Selections carries raw facet selections as received from the caller.
// An empty string means no constraint on that facet (wildcard).
type Selections struct {
	Department string
	Ministry   string
	DocType    string
	Status     string
	Year       string
}

// Criteria is a validated search query: optional free text plus per-facet
// exact-match constraints. Transient, one per query, never stored.
type Criteria struct {
	searchText string
	selections map[facet.Category]string
	year       int
	hasYear    bool
}

// New validates and normalizes search criteria. Search text is trimmed;
// whitespace-only text means recency mode downstream. Facet selections are
// taken verbatim (matching is case-sensitive on raw values). A year
// selection must parse as an integer; anything else is rejected.
func New(searchText string, sel Selections) (Criteria, error) {
	searchText = strings.TrimSpace(searchText)
	if len(searchText) > MaxSearchTextLength {
		return Criteria{}, fmt.Errorf("%w: search text too long (max %d chars)",
			domain.ErrInvalidCriteria, MaxSearchTextLength)
	}

	c := Criteria{searchText: searchText}

	selections := make(map[facet.Category]string, 4)
	for cat, v := range map[facet.Category]string{
		facet.Department: sel.Department,
		facet.Ministry:   sel.Ministry,
		facet.DocType:    sel.DocType,
		facet.Status:     sel.Status,
	} {
		if v != "" {
			selections[cat] = v
		}
	}
	if len(selections) > 0 {
		c.selections = selections
	}

	if y := strings.TrimSpace(sel.Year); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: year %q is not numeric", domain.ErrInvalidCriteria, sel.Year)
		}
		c.year = n
		c.hasYear = true
	}

	return c, nil
}

// SearchText returns the trimmed search text ("" when absent).
func (c Criteria) SearchText() string { return c.searchText }

// HasSearchText reports whether the criteria carry non-empty search text.
func (c Criteria) HasSearchText() bool { return c.searchText != "" }

// Selection returns the constraint for a string facet category.
// ok is false when the category is unconstrained.
func (c Criteria) Selection(cat facet.Category) (string, bool) {
	v, ok := c.selections[cat]
	return v, ok
}

// Year returns the year constraint. ok is false when unconstrained.
func (c Criteria) Year() (int, bool) { return c.year, c.hasYear }

// HasSelections reports whether any facet (including year) is constrained.
func (c Criteria) HasSelections() bool {
	return len(c.selections) > 0 || c.hasYear
}
