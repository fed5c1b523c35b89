package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidCriteria signals malformed search criteria.
	ErrInvalidCriteria = errors.New("invalid search criteria")
	// ErrInvalidDocument signals a document that fails construction rules.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrInvalidFacet signals a facet value outside the catalog vocabulary.
	ErrInvalidFacet = errors.New("invalid facet value")
	// ErrInvalidCursor signals a malformed pagination cursor.
	ErrInvalidCursor = errors.New("invalid pagination cursor")
	// ErrAttachmentInvalid signals a rejected attachment upload request.
	ErrAttachmentInvalid = errors.New("invalid attachment")
	// ErrAttachmentsDisabled signals that attachment storage is not configured.
	ErrAttachmentsDisabled = errors.New("attachments disabled")
)

// InvalidFacetError wraps ErrInvalidFacet with the offending category and value.
type InvalidFacetError struct {
	Category string
	Value    string
}

func (e *InvalidFacetError) Error() string {
	return fmt.Sprintf("%s: %q is not a known %s", ErrInvalidFacet.Error(), e.Value, e.Category)
}

func (e *InvalidFacetError) Unwrap() error { return ErrInvalidFacet }

// NewInvalidFacet creates an invalid facet error.
func NewInvalidFacet(category, value string) error {
	return &InvalidFacetError{Category: category, Value: value}
}
