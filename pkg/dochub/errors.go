package dochub

import "github.com/HKKoho/DocumentHub/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound            = domain.ErrNotFound
	ErrAlreadyExists       = domain.ErrAlreadyExists
	ErrDocumentNotFound    = domain.ErrDocumentNotFound
	ErrInvalidDocument     = domain.ErrInvalidDocument
	ErrInvalidCriteria     = domain.ErrInvalidCriteria
	ErrInvalidFacet        = domain.ErrInvalidFacet
	ErrInvalidCursor       = domain.ErrInvalidCursor
	ErrAttachmentInvalid   = domain.ErrAttachmentInvalid
	ErrAttachmentsDisabled = domain.ErrAttachmentsDisabled
)
