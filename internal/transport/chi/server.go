package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/HKKoho/DocumentHub/internal/domain"
	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
	"github.com/HKKoho/DocumentHub/internal/domain/search/criteria"
	attachmentuc "github.com/HKKoho/DocumentHub/internal/usecase/attachment"
	documentuc "github.com/HKKoho/DocumentHub/internal/usecase/document"
	facetuc "github.com/HKKoho/DocumentHub/internal/usecase/facet"
	healthuc "github.com/HKKoho/DocumentHub/internal/usecase/health"
	searchuc "github.com/HKKoho/DocumentHub/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the catalog API.
type Server struct {
	search        *searchuc.Service
	documents     *documentuc.Service
	facets        *facetuc.Service
	attachments   *attachmentuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. attachments may be nil when
// attachment storage is not configured; the upload endpoint then reports
// attachments_disabled.
func NewServer(
	search *searchuc.Service,
	documents *documentuc.Service,
	facets *facetuc.Service,
	attachments *attachmentuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:      search,
		documents:   documents,
		facets:      facets,
		attachments: attachments,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		invalidFacetHandler,
		detailHandler(domain.ErrInvalidDocument, http.StatusBadRequest, CodeValidationFailed),
		detailHandler(domain.ErrAttachmentInvalid, http.StatusBadRequest, CodeAttachmentInvalid),
		sentinelHandler(domain.ErrInvalidCriteria, http.StatusBadRequest, CodeInvalidCriteria),
		sentinelHandler(domain.ErrInvalidCursor, http.StatusBadRequest, CodeInvalidCursor),
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, CodeDocumentNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
		sentinelHandler(domain.ErrAttachmentsDisabled, http.StatusNotImplemented, CodeAttachmentsDisabled),
	}
	return s
}

// SearchDocuments handles POST /api/v1/search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var sel criteria.Selections
	if req.Filters != nil {
		sel = criteria.Selections{
			Department: req.Filters.Department,
			Ministry:   req.Filters.Ministry,
			DocType:    req.Filters.DocType,
			Status:     req.Filters.Status,
			Year:       req.Filters.Year,
		}
	}

	c, err := criteria.New(req.Query, sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidCriteria, err.Error())
		return
	}

	loc := locale.Locale(req.Locale)
	results, err := s.search.Search(r.Context(), c, loc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]SearchResultItem, len(results))
	for i := range results {
		items[i] = searchResultToDTO(results[i])
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Items:  items,
		Total:  len(items),
		Locale: string(loc.OrDefault()),
	})
}

// CreateDocument handles POST /api/v1/documents.
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var att domdoc.Attachment
	if req.Attachment != nil {
		var err error
		att, err = domdoc.NewAttachment(
			req.Attachment.ObjectKey,
			req.Attachment.FileName,
			req.Attachment.ContentType,
			req.Attachment.SizeBytes,
		)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
			return
		}
	}

	doc, err := s.documents.Create(r.Context(), req.Title, domdoc.Facets{
		Department: req.Department,
		Ministry:   req.Ministry,
		DocType:    req.DocType,
		Status:     req.Status,
	}, req.Year, att)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/documents/"+doc.ID())
	writeJSON(w, http.StatusCreated, documentToDTO(doc))
}

// GetDocument handles GET /api/v1/documents/{id}. The router extracts the
// path parameter.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, id string) {
	doc, err := s.documents.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, documentToDTO(doc))
}

// ListDocuments handles GET /api/v1/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	docs, nextCursor, err := s.documents.List(r.Context(), q.Get("cursor"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		items[i] = documentToDTO(d)
	}

	resp := DocumentListResponse{
		Items:   items,
		HasMore: nextCursor != "",
	}
	if nextCursor != "" {
		resp.NextCursor = &nextCursor
	}

	count, err := s.documents.Count(r.Context())
	if err == nil {
		resp.Total = &count
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateUploadURL handles POST /api/v1/attachments/upload-url.
func (s *Server) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	if s.attachments == nil {
		s.handleDomainError(w, domain.ErrAttachmentsDisabled)
		return
	}

	var req UploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	grant, err := s.attachments.Create(r.Context(), req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UploadURLResponse{
		URL:       grant.URL,
		Key:       grant.Key,
		ExpiresAt: grant.ExpiresAt,
	})
}

// ListFacets handles GET /api/v1/facets.
func (s *Server) ListFacets(w http.ResponseWriter, r *http.Request) {
	loc := locale.Locale(r.URL.Query().Get("locale"))

	listing, err := s.facets.List(r.Context(), loc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	facets := make(map[string][]FacetEntry, len(listing.Facets))
	for cat, entries := range listing.Facets {
		out := make([]FacetEntry, len(entries))
		for i, e := range entries {
			out[i] = FacetEntry{Value: e.Value, Label: e.Label}
		}
		facets[string(cat)] = out
	}

	writeJSON(w, http.StatusOK, FacetListResponse{
		Locale: string(listing.Locale),
		Facets: facets,
		Years:  listing.Years,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrDocumentNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidCriteria,
		domain.ErrInvalidFacet,
		domain.ErrInvalidCursor,
		domain.ErrInvalidDocument,
		domain.ErrAttachmentInvalid,
		domain.ErrAttachmentsDisabled,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// detailHandler matches a sentinel and returns the full error text. Only for
// sentinels whose wrapping sites produce client-safe messages.
func detailHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, _ string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

// invalidFacetHandler handles ErrInvalidFacet with the offending category and
// value as extra fields.
func invalidFacetHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrInvalidFacet) {
		return false
	}
	var ife *domain.InvalidFacetError
	if errors.As(err, &ife) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"code":     CodeInvalidFacet,
			"message":  msg,
			"category": ife.Category,
			"value":    ife.Value,
		})
		return true
	}
	writeError(w, http.StatusBadRequest, CodeInvalidFacet, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
