package chi

import (
	"time"

	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/search/result"
)

// ErrorCode is a machine-readable error class carried in error responses.
type ErrorCode string

const (
	CodeBadRequest          ErrorCode = "bad_request"
	CodeUnauthorized        ErrorCode = "unauthorized"
	CodeValidationFailed    ErrorCode = "validation_failed"
	CodeInvalidCriteria     ErrorCode = "invalid_criteria"
	CodeInvalidFacet        ErrorCode = "invalid_facet"
	CodeInvalidCursor       ErrorCode = "invalid_cursor"
	CodeDocumentNotFound    ErrorCode = "document_not_found"
	CodeAlreadyExists       ErrorCode = "already_exists"
	CodeAttachmentInvalid   ErrorCode = "attachment_invalid"
	CodeAttachmentsDisabled ErrorCode = "attachments_disabled"
	CodeInternalError       ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchFilters carries per-facet exact-match selections. Empty or absent
// fields leave the facet unconstrained. Year is a string so a non-numeric
// value reaches criteria validation instead of failing JSON decoding.
type SearchFilters struct {
	Department string `json:"department,omitempty"`
	Ministry   string `json:"ministry,omitempty"`
	DocType    string `json:"doc_type,omitempty"`
	Status     string `json:"status,omitempty"`
	Year       string `json:"year,omitempty"`
}

// SearchRequest is the POST /search body.
type SearchRequest struct {
	Query   string         `json:"query,omitempty"`
	Locale  string         `json:"locale,omitempty"`
	Filters *SearchFilters `json:"filters,omitempty"`
}

// AttachmentResponse describes a stored file reference.
type AttachmentResponse struct {
	ObjectKey   string `json:"object_key"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
}

// DocumentResponse is the wire form of a catalog document. Facet values are
// returned raw (canonical); display localization is the client's concern.
type DocumentResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Department string              `json:"department"`
	Ministry   string              `json:"ministry"`
	DocType    string              `json:"doc_type"`
	Status     string              `json:"status"`
	Year       int                 `json:"year"`
	CreatedAt  time.Time           `json:"created_at"`
	Attachment *AttachmentResponse `json:"attachment,omitempty"`
}

// SearchResultItem is a document plus its relevance score.
type SearchResultItem struct {
	DocumentResponse
	Score int `json:"score"`
}

// SearchResponse is the POST /search reply.
type SearchResponse struct {
	Items  []SearchResultItem `json:"items"`
	Total  int                `json:"total"`
	Locale string             `json:"locale"`
}

// CreateAttachmentRequest references an already-uploaded file.
type CreateAttachmentRequest struct {
	ObjectKey   string `json:"object_key"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
}

// CreateDocumentRequest is the POST /documents body.
type CreateDocumentRequest struct {
	Title      string                   `json:"title"`
	Department string                   `json:"department"`
	Ministry   string                   `json:"ministry"`
	DocType    string                   `json:"doc_type"`
	Status     string                   `json:"status"`
	Year       int                      `json:"year"`
	Attachment *CreateAttachmentRequest `json:"attachment,omitempty"`
}

// DocumentListResponse is a newest-first page of documents.
type DocumentListResponse struct {
	Items      []DocumentResponse `json:"items"`
	HasMore    bool               `json:"has_more"`
	NextCursor *string            `json:"next_cursor,omitempty"`
	Total      *int               `json:"total,omitempty"`
}

// UploadURLRequest is the POST /attachments/upload-url body.
type UploadURLRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// UploadURLResponse carries a presigned upload grant.
type UploadURLResponse struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FacetEntry pairs a canonical facet value with its localized label.
type FacetEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FacetListResponse is the GET /facets reply.
type FacetListResponse struct {
	Locale string                  `json:"locale"`
	Facets map[string][]FacetEntry `json:"facets"`
	Years  []int                   `json:"years,omitempty"`
}

// HealthResponse is the GET /health reply.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func documentToDTO(doc domdoc.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:         doc.ID(),
		Title:      doc.Title(),
		Department: doc.Facets().Department,
		Ministry:   doc.Facets().Ministry,
		DocType:    doc.Facets().DocType,
		Status:     doc.Facets().Status,
		Year:       doc.Year(),
		CreatedAt:  doc.CreatedAt(),
	}
	if doc.HasAttachment() {
		att := doc.Attachment()
		resp.Attachment = &AttachmentResponse{
			ObjectKey:   att.ObjectKey(),
			FileName:    att.FileName(),
			ContentType: att.ContentType(),
			SizeBytes:   att.SizeBytes(),
		}
	}
	return resp
}

func searchResultToDTO(res result.Result) SearchResultItem {
	return SearchResultItem{
		DocumentResponse: documentToDTO(res.Document()),
		Score:            res.Score(),
	}
}
