package search

import (
	"context"
	"time"

	"github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// docAt builds a fixture document created at baseTime plus an offset.
// Insertion order in fixtures follows the slice order, matching seq.
func docAt(id, title string, f document.Facets, year int, offset time.Duration, seq int64) document.Document {
	return document.Reconstruct(id, title, f, year, document.Attachment{}, baseTime.Add(offset), seq)
}

func defaultFacets() document.Facets {
	return document.Facets{
		Department: "Missions Department",
		Ministry:   "Care Ministry",
		DocType:    "Meeting Minutes",
		Status:     "Approved",
	}
}

// mockSource implements Source over a fixed slice.
type mockSource struct {
	docs  []document.Document
	err   error
	calls int
}

func (m *mockSource) All(_ context.Context) ([]document.Document, error) {
	m.calls++
	return m.docs, m.err
}

// identityTranslator renders every value as itself.
type identityTranslator struct{}

func (identityTranslator) Title(_ locale.Locale, title string) string { return title }

func (identityTranslator) Label(_ locale.Locale, _ facet.Category, raw string) string { return raw }

// dictTranslator renders from in-test dictionaries with identity fallback.
type dictTranslator struct {
	titles map[locale.Locale]map[string]string
	labels map[locale.Locale]map[facet.Category]map[string]string
}

func (d *dictTranslator) Title(loc locale.Locale, title string) string {
	if v, ok := d.titles[loc][title]; ok {
		return v
	}
	return title
}

func (d *dictTranslator) Label(loc locale.Locale, cat facet.Category, raw string) string {
	if v, ok := d.labels[loc][cat][raw]; ok {
		return v
	}
	return raw
}
