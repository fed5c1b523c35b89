package dochub

import (
	"context"
	"time"

	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
	"github.com/HKKoho/DocumentHub/internal/domain/search/criteria"
	"github.com/HKKoho/DocumentHub/internal/domain/search/result"
	attachmentuc "github.com/HKKoho/DocumentHub/internal/usecase/attachment"
	facetuc "github.com/HKKoho/DocumentHub/internal/usecase/facet"
	healthuc "github.com/HKKoho/DocumentHub/internal/usecase/health"
)

// --- documentUseCase mock ---

type mockDocumentUC struct {
	createFn func(ctx context.Context, title string, facets domdoc.Facets, year int, att domdoc.Attachment) (domdoc.Document, error)
	getFn    func(ctx context.Context, id string) (domdoc.Document, error)
	listFn   func(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error)
	countFn  func(ctx context.Context) (int, error)
}

func (m *mockDocumentUC) Create(
	ctx context.Context, title string, facets domdoc.Facets, year int, att domdoc.Attachment,
) (domdoc.Document, error) {
	return m.createFn(ctx, title, facets, year, att)
}

func (m *mockDocumentUC) Get(ctx context.Context, id string) (domdoc.Document, error) {
	return m.getFn(ctx, id)
}

func (m *mockDocumentUC) List(
	ctx context.Context, cursor string, limit int,
) ([]domdoc.Document, string, error) {
	return m.listFn(ctx, cursor, limit)
}

func (m *mockDocumentUC) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, c criteria.Criteria, loc locale.Locale) ([]result.Result, error)
}

func (m *mockSearchUC) Search(
	ctx context.Context, c criteria.Criteria, loc locale.Locale,
) ([]result.Result, error) {
	return m.searchFn(ctx, c, loc)
}

// --- facetUseCase mock ---

type mockFacetUC struct {
	listFn func(ctx context.Context, loc locale.Locale) (facetuc.Listing, error)
}

func (m *mockFacetUC) List(ctx context.Context, loc locale.Locale) (facetuc.Listing, error) {
	return m.listFn(ctx, loc)
}

// --- attachmentUseCase mock ---

type mockAttachmentUC struct {
	createFn func(ctx context.Context, fileName, contentType string, sizeBytes int64) (attachmentuc.Grant, error)
}

func (m *mockAttachmentUC) Create(
	ctx context.Context, fileName, contentType string, sizeBytes int64,
) (attachmentuc.Grant, error) {
	return m.createFn(ctx, fileName, contentType, sizeBytes)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

// --- helpers ---

func testClient(
	docSvc documentUseCase,
	searchSvc searchUseCase,
	facetSvc facetUseCase,
	healthSvc healthUseCase,
) *Client {
	return &Client{
		docSvc:    docSvc,
		searchSvc: searchSvc,
		facetSvc:  facetSvc,
		healthSvc: healthSvc,
	}
}

func testStoredDocument(id, title string, year int) domdoc.Document {
	return domdoc.Reconstruct(
		id, title,
		domdoc.Facets{
			Department: "Missions Department",
			Ministry:   "Children's Ministry",
			DocType:    "Budget Report",
			Status:     "Approved",
		},
		year,
		domdoc.Attachment{},
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		1,
	)
}
