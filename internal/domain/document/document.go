package document

import (
	"fmt"
	"time"

	"github.com/HKKoho/DocumentHub/internal/domain/facet"
)

// MaxTitleBytes is the maximum document title size in bytes.
const MaxTitleBytes = 512

// Publication year plausibility bounds.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Facets holds the classification values of a document, one per category.
type Facets struct {
	Department string
	Ministry   string
	DocType    string
	Status     string
}

// Document is the catalog document aggregate (immutable value object).
// The collection is append-only: documents are never mutated or removed
// once created, so a Document carries no revision.
type Document struct {
	id         string
	title      string
	facets     Facets
	year       int
	attachment Attachment
	createdAt  time.Time
	seq        int64
}

// New validates and creates a Document. The caller supplies the ID.
// Title: non-empty, max 512 bytes, kept exactly as given. Facet values:
// non-empty; vocabulary membership is checked in the service layer.
// Year: 1900-2100. CreatedAt is fixed at construction (UTC).
func New(id, title string, f Facets, year int, att Attachment) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if title == "" {
		return Document{}, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleBytes {
		return Document{}, fmt.Errorf("title too long (max %d bytes)", MaxTitleBytes)
	}
	if f.Department == "" {
		return Document{}, fmt.Errorf("department is required")
	}
	if f.Ministry == "" {
		return Document{}, fmt.Errorf("ministry is required")
	}
	if f.DocType == "" {
		return Document{}, fmt.Errorf("doc type is required")
	}
	if f.Status == "" {
		return Document{}, fmt.Errorf("status is required")
	}
	if year < MinYear || year > MaxYear {
		return Document{}, fmt.Errorf("year %d out of range (%d-%d)", year, MinYear, MaxYear)
	}

	return Document{
		id:         id,
		title:      title,
		facets:     f,
		year:       year,
		attachment: att,
		createdAt:  time.Now().UTC(),
	}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(
	id, title string, f Facets, year int,
	att Attachment, createdAt time.Time, seq int64,
) Document {
	return Document{
		id: id, title: title, facets: f, year: year,
		attachment: att, createdAt: createdAt, seq: seq,
	}
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// Title returns the document title in its stored representation.
func (d Document) Title() string { return d.title }

// Facets returns the classification values.
func (d Document) Facets() Facets { return d.facets }

// Facet returns the value of a single facet category.
func (d Document) Facet(cat facet.Category) string {
	switch cat {
	case facet.Department:
		return d.facets.Department
	case facet.Ministry:
		return d.facets.Ministry
	case facet.DocType:
		return d.facets.DocType
	case facet.Status:
		return d.facets.Status
	}
	return ""
}

// Year returns the publication year.
func (d Document) Year() int { return d.year }

// Attachment returns the attached file reference (zero value when absent).
func (d Document) Attachment() Attachment { return d.attachment }

// HasAttachment reports whether the document carries an attachment.
func (d Document) HasAttachment() bool { return !d.attachment.IsZero() }

// CreatedAt returns the creation timestamp (UTC).
func (d Document) CreatedAt() time.Time { return d.createdAt }

// Seq returns the insertion sequence number (0 until persisted).
func (d Document) Seq() int64 { return d.seq }

// WithSeq returns a copy with the insertion sequence number set.
func (d Document) WithSeq(seq int64) Document {
	return Document{
		id: d.id, title: d.title, facets: d.facets, year: d.year,
		attachment: d.attachment, createdAt: d.createdAt, seq: seq,
	}
}
