package dochub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HKKoho/DocumentHub/internal/db"
	dbMemory "github.com/HKKoho/DocumentHub/internal/db/memory"
	dbRedis "github.com/HKKoho/DocumentHub/internal/db/redis"
	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
	"github.com/HKKoho/DocumentHub/internal/domain/search/criteria"
	"github.com/HKKoho/DocumentHub/internal/domain/search/result"
	"github.com/HKKoho/DocumentHub/internal/i18n"
	documentrepo "github.com/HKKoho/DocumentHub/internal/repository/document"
	s3Transport "github.com/HKKoho/DocumentHub/internal/transport/s3"
	attachmentuc "github.com/HKKoho/DocumentHub/internal/usecase/attachment"
	documentuc "github.com/HKKoho/DocumentHub/internal/usecase/document"
	facetuc "github.com/HKKoho/DocumentHub/internal/usecase/facet"
	healthuc "github.com/HKKoho/DocumentHub/internal/usecase/health"
	searchuc "github.com/HKKoho/DocumentHub/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "dochub:"
)

// Internal interfaces so tests can substitute the services.
type documentUseCase interface {
	Create(ctx context.Context, title string, facets domdoc.Facets, year int, att domdoc.Attachment) (domdoc.Document, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error)
	Count(ctx context.Context) (int, error)
}

type searchUseCase interface {
	Search(ctx context.Context, c criteria.Criteria, loc locale.Locale) ([]result.Result, error)
}

type facetUseCase interface {
	List(ctx context.Context, loc locale.Locale) (facetuc.Listing, error)
}

type attachmentUseCase interface {
	Create(ctx context.Context, fileName, contentType string, sizeBytes int64) (attachmentuc.Grant, error)
}

// Client is the DocumentHub SDK entry point.
type Client struct {
	store     db.Store
	docSvc    documentUseCase
	searchSvc searchUseCase
	facetSvc  facetUseCase
	attachSvc attachmentUseCase // nil when storage is not configured
	healthSvc healthUseCase
	obs       *observer
}

// New creates a DocumentHub Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("dochub: database required (use WithRedis or WithMemory)")
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("dochub: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs)
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("dochub: create redis store: %w", err)
		}
		return s, nil
	case "memory":
		return dbMemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("dochub: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	reg, err := i18n.LoadFiles(cfg.dictionaryFiles...)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("dochub: %w", err)
	}
	for _, d := range cfg.dictionaries {
		if err := reg.Add(toInternalDictionary(d)); err != nil {
			store.Close()
			return nil, fmt.Errorf("dochub: dictionary %q: %w", d.Locale, err)
		}
	}

	vocabValues := make(map[facet.Category][]string, len(cfg.vocabulary))
	for cat, vs := range cfg.vocabulary {
		vocabValues[facet.Category(cat)] = vs
	}
	vocab := facet.NewVocabulary(vocabValues)

	prefix := cfg.keyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	docRepo := documentrepo.New(store, prefix)

	docSvc := documentuc.New(docRepo, vocab)
	if cfg.defaultPageSize > 0 || cfg.maxPageSize > 0 {
		docSvc = docSvc.WithPagination(cfg.defaultPageSize, cfg.maxPageSize)
	}
	searchSvc := searchuc.New(docRepo, reg, vocab)
	facetSvc := facetuc.New(vocab, reg, docRepo)

	presigner := cfg.presigner
	var storageChecker healthuc.StorageChecker
	if presigner == nil && cfg.s3 != nil {
		p, err := s3Transport.NewPresigner(&s3Transport.Config{
			Endpoint:        cfg.s3.endpoint,
			Region:          cfg.s3.region,
			Bucket:          cfg.s3.bucket,
			AccessKeyID:     cfg.s3.accessKeyID,
			SecretAccessKey: cfg.s3.secretAccessKey,
		})
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("dochub: %w", err)
		}
		presigner = p
		storageChecker = p
	}
	var attachSvc attachmentUseCase
	if presigner != nil {
		attachSvc = attachmentuc.New(presigner, cfg.maxSizeMB, cfg.urlExpiry)
	}

	healthSvc := healthuc.New(store, storageChecker)

	return &Client{
		store:     store,
		docSvc:    docSvc,
		searchSvc: searchSvc,
		facetSvc:  facetSvc,
		attachSvc: attachSvc,
		healthSvc: healthSvc,
		obs:       obs,
	}, nil
}

// Close releases the database connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Documents returns the document service.
func (c *Client) Documents() *DocumentService {
	return &DocumentService{svc: c.docSvc, obs: c.obs}
}

// Search starts a search builder.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{svc: c.searchSvc, obs: c.obs}
}

// Facets returns the facet listing service.
func (c *Client) Facets() *FacetService {
	return &FacetService{svc: c.facetSvc, obs: c.obs}
}

// Attachments returns the attachment upload service.
func (c *Client) Attachments() *AttachmentService {
	return &AttachmentService{svc: c.attachSvc, obs: c.obs}
}

func toInternalDictionary(d Dictionary) i18n.Dictionary {
	out := i18n.Dictionary{
		Locale: locale.Locale(d.Locale),
		Titles: d.Titles,
	}
	if len(d.Labels) > 0 {
		out.Labels = make(map[facet.Category]map[string]string, len(d.Labels))
		for cat, m := range d.Labels {
			out.Labels[facet.Category(cat)] = m
		}
	}
	return out
}
