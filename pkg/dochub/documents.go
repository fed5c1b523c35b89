package dochub

import (
	"context"
	"fmt"
	"time"

	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
)

// DocumentService manages catalog documents.
type DocumentService struct {
	svc documentUseCase
	obs *observer
}

// Create registers a document and returns the stored copy, including
// the assigned ID and creation timestamp.
func (s *DocumentService) Create(ctx context.Context, d NewDocument) (doc Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("create_document", start, err) }()

	att, err := toInternalAttachment(d.Attachment)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	facets := domdoc.Facets{
		Department: d.Department,
		Ministry:   d.Ministry,
		DocType:    d.DocType,
		Status:     d.Status,
	}
	stored, err := s.svc.Create(ctx, d.Title, facets, d.Year, att)
	if err != nil {
		return Document{}, fmt.Errorf("create document: %w", err)
	}
	return fromInternalDocument(stored), nil
}

// Get returns a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (doc Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("get_document", start, err) }()

	stored, err := s.svc.Get(ctx, id)
	if err != nil {
		return Document{}, fmt.Errorf("get document: %w", err)
	}
	return fromInternalDocument(stored), nil
}

// List pages through the catalog newest-first. Pass an empty cursor for
// the first page and the returned NextCursor for subsequent pages; an
// empty NextCursor means the listing is exhausted. A limit of 0 uses
// the configured default page size.
func (s *DocumentService) List(ctx context.Context, cursor string, limit int) (res ListResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("list_documents", start, err) }()

	docs, next, err := s.svc.List(ctx, cursor, limit)
	if err != nil {
		return ListResult{}, fmt.Errorf("list documents: %w", err)
	}

	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = fromInternalDocument(d)
	}
	return ListResult{Documents: out, NextCursor: next}, nil
}

// Count returns the number of documents in the catalog.
func (s *DocumentService) Count(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("count_documents", start, err) }()

	n, err = s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func toInternalAttachment(a *Attachment) (domdoc.Attachment, error) {
	if a == nil {
		return domdoc.Attachment{}, nil
	}
	return domdoc.NewAttachment(a.ObjectKey, a.FileName, a.ContentType, a.SizeBytes)
}

func fromInternalDocument(d domdoc.Document) Document {
	doc := Document{
		ID:         d.ID(),
		Title:      d.Title(),
		Department: d.Facets().Department,
		Ministry:   d.Facets().Ministry,
		DocType:    d.Facets().DocType,
		Status:     d.Facets().Status,
		Year:       d.Year(),
		CreatedAt:  d.CreatedAt(),
	}
	if d.HasAttachment() {
		att := d.Attachment()
		doc.Attachment = &Attachment{
			ObjectKey:   att.ObjectKey(),
			FileName:    att.FileName(),
			ContentType: att.ContentType(),
			SizeBytes:   att.SizeBytes(),
		}
	}
	return doc
}
