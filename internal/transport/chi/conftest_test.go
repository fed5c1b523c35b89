package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/HKKoho/DocumentHub/internal/db/memory"
	domfacet "github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
	"github.com/HKKoho/DocumentHub/internal/i18n"
	documentrepo "github.com/HKKoho/DocumentHub/internal/repository/document"
	attachmentuc "github.com/HKKoho/DocumentHub/internal/usecase/attachment"
	documentuc "github.com/HKKoho/DocumentHub/internal/usecase/document"
	facetuc "github.com/HKKoho/DocumentHub/internal/usecase/facet"
	healthuc "github.com/HKKoho/DocumentHub/internal/usecase/health"
	searchuc "github.com/HKKoho/DocumentHub/internal/usecase/search"
)

// --- Mocks ---

type stubPresigner struct {
	baseURL string
	err     error
}

func (p *stubPresigner) PresignPut(_ context.Context, key, _ string, _ int64, _ time.Duration) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.baseURL + "/" + key, nil
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

// fixture wires the handlers to real services over the in-memory store, so
// handler tests cover the full request path without a network.
type fixture struct {
	server *Server
}

func newTestServer(t *testing.T, attachments *attachmentuc.Service) *fixture {
	t.Helper()

	store := memory.NewStore()
	repo := documentrepo.New(store, "dochub:")
	vocab := domfacet.DefaultVocabulary()

	reg := i18n.NewRegistry()
	err := reg.Add(i18n.Dictionary{
		Locale: locale.TraditionalChinese,
		Labels: map[domfacet.Category]map[string]string{
			domfacet.Department: {"Missions Department": "差傳部"},
			domfacet.DocType:    {"Budget Report": "預算報告"},
		},
		Titles: map[string]string{"Annual Budget": "年度預算"},
	})
	if err != nil {
		t.Fatalf("add dictionary: %v", err)
	}

	server := NewServer(
		searchuc.New(repo, reg, vocab),
		documentuc.New(repo, vocab),
		facetuc.New(vocab, reg, repo),
		attachments,
		healthuc.New(store, nil),
		zap.NewNop(),
	)
	return &fixture{server: server}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, target, http.NoBody)
	}
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return httptest.NewRequest(method, target, bytes.NewReader(b))
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, status int, code ErrorCode) ErrorResponse {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("got status %d, want %d (body %s)", rr.Code, status, rr.Body.String())
	}
	var resp ErrorResponse
	decodeJSON(t, rr, &resp)
	if resp.Code != code {
		t.Errorf("got error code %q, want %q", resp.Code, code)
	}
	return resp
}

// docRequest returns a valid create request; tests mutate what they need.
func docRequest(title string) CreateDocumentRequest {
	return CreateDocumentRequest{
		Title:      title,
		Department: "Missions Department",
		Ministry:   "Care Ministry",
		DocType:    "Meeting Minutes",
		Status:     "Approved",
		Year:       2024,
	}
}

func (f *fixture) createDoc(t *testing.T, req CreateDocumentRequest) DocumentResponse {
	t.Helper()
	rr := httptest.NewRecorder()
	f.server.CreateDocument(rr, jsonRequest(t, http.MethodPost, "/api/v1/documents", req))
	if rr.Code != http.StatusCreated {
		t.Fatalf("seed document %q: got status %d, body %s", req.Title, rr.Code, rr.Body.String())
	}
	var resp DocumentResponse
	decodeJSON(t, rr, &resp)
	return resp
}

func (f *fixture) search(t *testing.T, req SearchRequest) (*httptest.ResponseRecorder, SearchResponse) {
	t.Helper()
	rr := httptest.NewRecorder()
	f.server.SearchDocuments(rr, jsonRequest(t, http.MethodPost, "/api/v1/search", req))
	var resp SearchResponse
	if rr.Code == http.StatusOK {
		decodeJSON(t, rr, &resp)
	}
	return rr, resp
}
