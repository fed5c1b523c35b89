package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/HKKoho/DocumentHub/internal/domain"
	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/metrics"
)

// Service handles catalog document intake and retrieval. The catalog is
// append-only: documents are created and read, never updated or removed.
type Service struct {
	repo            Repository
	vocab           facet.Vocabulary
	defaultPageSize int
	maxPageSize     int
}

// New creates a document service.
func New(repo Repository, vocab facet.Vocabulary) *Service {
	return &Service{
		repo:            repo,
		vocab:           vocab,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Create validates the facet values against the vocabulary, builds a
// document under a fresh ID and persists it. The stored copy, including
// its insertion sequence, is returned.
func (s *Service) Create(
	ctx context.Context, title string, facets domdoc.Facets, year int, att domdoc.Attachment,
) (domdoc.Document, error) {
	if err := s.validateFacets(facets); err != nil {
		return domdoc.Document{}, err
	}

	doc, err := domdoc.New(uuid.NewString(), title, facets, year, att)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}

	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("create document: %w", err)
	}

	metrics.DocumentsCreatedTotal.WithLabelValues(facets.Department, facets.DocType).Inc()
	return stored, nil
}

// Get retrieves a document by ID.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	if id == "" {
		return domdoc.Document{}, fmt.Errorf("document ID is required: %w", domain.ErrDocumentNotFound)
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// List returns a page of documents, newest first.
func (s *Service) List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	docs, nextCursor, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list documents: %w", err)
	}
	return docs, nextCursor, nil
}

// Count returns the number of documents in the catalog.
func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

// validateFacets checks every facet value against the vocabulary. Unlike
// search criteria, a stored document constrains all four categories, so
// empty values are rejected here as well ("" is never a vocabulary member).
func (s *Service) validateFacets(f domdoc.Facets) error {
	for cat, v := range map[facet.Category]string{
		facet.Department: f.Department,
		facet.Ministry:   f.Ministry,
		facet.DocType:    f.DocType,
		facet.Status:     f.Status,
	} {
		if !s.vocab.Contains(cat, v) {
			return domain.NewInvalidFacet(string(cat), v)
		}
	}
	return nil
}
