// Package i18n renders catalog values for a display locale. Lookups are
// pure dictionary reads with identity fallback: a value without a
// translation, or a locale without a dictionary, renders as the value
// itself. A Registry is built once at startup and is safe for concurrent
// readers afterwards.
package i18n

import (
	"fmt"
	"sort"

	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
)

// Dictionary is one locale's translations: facet labels keyed by category
// and canonical value, and title variants keyed by the stored title.
type Dictionary struct {
	Locale locale.Locale
	Labels map[facet.Category]map[string]string
	Titles map[string]string
}

// titleEntry groups every known variant of one title. The registry indexes
// the entry under each variant, so a lookup resolves from any direction
// without scanning.
type titleEntry struct {
	variants map[locale.Locale]string
}

// Registry holds the loaded dictionaries.
type Registry struct {
	labels map[locale.Locale]map[facet.Category]map[string]string
	titles map[string]*titleEntry
}

// NewRegistry creates an empty registry. All lookups fall back to identity.
func NewRegistry() *Registry {
	return &Registry{
		labels: make(map[locale.Locale]map[facet.Category]map[string]string),
		titles: make(map[string]*titleEntry),
	}
}

// Add merges one locale's dictionary into the registry. Titles sharing a
// stored key across dictionaries collapse into a single entry, so variants
// resolve across locales as well as back to the stored title.
func (r *Registry) Add(d Dictionary) error {
	if d.Locale == "" {
		return fmt.Errorf("dictionary locale is required")
	}

	if len(d.Labels) > 0 {
		byCat := r.labels[d.Locale]
		if byCat == nil {
			byCat = make(map[facet.Category]map[string]string)
			r.labels[d.Locale] = byCat
		}
		for cat, m := range d.Labels {
			dst := byCat[cat]
			if dst == nil {
				dst = make(map[string]string, len(m))
				byCat[cat] = dst
			}
			for raw, label := range m {
				dst[raw] = label
			}
		}
	}

	for stored, variant := range d.Titles {
		if variant == "" {
			continue
		}
		entry := r.titles[stored]
		if entry == nil {
			entry = &titleEntry{variants: map[locale.Locale]string{
				locale.English: stored,
			}}
			r.titles[stored] = entry
		}
		entry.variants[d.Locale] = variant
		r.titles[variant] = entry
	}

	return nil
}

// Title renders a stored title for the locale. The input may be any known
// variant of the title, not only the stored one. Unknown titles and
// locales render as the input.
func (r *Registry) Title(loc locale.Locale, title string) string {
	entry := r.titles[title]
	if entry == nil {
		return title
	}
	if v, ok := entry.variants[loc.OrDefault()]; ok {
		return v
	}
	return title
}

// Label renders a facet value for the locale, falling back to the raw value.
func (r *Registry) Label(loc locale.Locale, cat facet.Category, raw string) string {
	if label, ok := r.labels[loc.OrDefault()][cat][raw]; ok {
		return label
	}
	return raw
}

// Locales returns the locales with a loaded dictionary, sorted. The base
// locale is always available even without a dictionary.
func (r *Registry) Locales() []locale.Locale {
	seen := map[locale.Locale]bool{locale.English: true}
	for loc := range r.labels {
		seen[loc] = true
	}
	for _, e := range r.titles {
		for loc := range e.variants {
			seen[loc] = true
		}
	}
	out := make([]locale.Locale, 0, len(seen))
	for loc := range seen {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
