package dochub

import "time"

// Document is a catalog document.
type Document struct {
	ID         string
	Title      string
	Department string
	Ministry   string
	DocType    string
	Status     string
	Year       int
	CreatedAt  time.Time
	Attachment *Attachment // nil when absent
}

// Attachment is an opaque reference to a file in object storage.
// The catalog carries the reference and never inspects the contents.
type Attachment struct {
	ObjectKey   string
	FileName    string
	ContentType string
	SizeBytes   int64
}

// NewDocument is the input for creating a catalog document.
// The ID is assigned by the catalog.
type NewDocument struct {
	Title      string
	Department string
	Ministry   string
	DocType    string
	Status     string
	Year       int
	Attachment *Attachment
}

// ListResult is a paginated list of documents, newest first.
type ListResult struct {
	Documents  []Document
	NextCursor string // "" on the last page
}

// SearchHit is a single search hit.
type SearchHit struct {
	Document Document
	Score    int // 0 in recency mode
}

// FacetEntry is one selectable facet value with its display label.
type FacetEntry struct {
	Value string
	Label string
}

// FacetListing is the facet vocabulary with labels rendered for one
// locale, plus the distinct publication years in the catalog (newest
// first).
type FacetListing struct {
	Locale string
	Facets map[string][]FacetEntry
	Years  []int
}

// UploadGrant is a one-shot permission to upload a file to storage.
type UploadGrant struct {
	URL       string
	Key       string
	ExpiresAt time.Time
}

// Dictionary is one locale's translations: facet labels keyed by
// category and canonical value, and title variants keyed by the stored
// title.
type Dictionary struct {
	Locale string
	Labels map[string]map[string]string
	Titles map[string]string
}
