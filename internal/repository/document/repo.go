package document

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/HKKoho/DocumentHub/internal/domain"
	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
)

// DefaultKeyPrefix namespaces all catalog keys when config leaves the
// prefix empty.
const DefaultKeyPrefix = "dochub:"

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
}

// Repo implements usecase/document.Repository and the search catalog
// source. One hash per document plus a global insertion counter.
//
// Key layout: <prefix>doc:<id> for documents, <prefix>seq:doc for the
// insertion sequence.
type Repo struct {
	store  store
	prefix string
}

// New creates a document repository with the given key prefix.
func New(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

// Create stores a new document: duplicate check, sequence allocation,
// HSET. Returns the stored copy carrying its insertion sequence.
func (r *Repo) Create(ctx context.Context, doc domdoc.Document) (domdoc.Document, error) {
	key := r.docKey(doc.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		return domdoc.Document{}, domain.ErrAlreadyExists
	}

	seq, err := r.store.IncrBy(ctx, r.seqKey(), 1)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("next sequence: %w", err)
	}

	stored := doc.WithSeq(seq)
	if err := r.store.HSet(ctx, key, docToHash(stored)); err != nil {
		return domdoc.Document{}, fmt.Errorf("hset document %s: %w", key, err)
	}
	return stored, nil
}

// Get returns a document by ID.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	key := r.docKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("hgetall document %s: %w", key, err)
	}
	if len(m) == 0 {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return docFromHash(m)
}

// All returns every document in insertion order (sequence ascending).
// This is the canonical catalog order the search engine filters over.
func (r *Repo) All(ctx context.Context) ([]domdoc.Document, error) {
	keys, err := r.store.Scan(ctx, r.docKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	if len(keys) == 0 {
		return []domdoc.Document{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi documents: %w", err)
	}

	docs := make([]domdoc.Document, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		doc, err := docFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse document %s: %w", keys[i], err)
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Seq() < docs[j].Seq()
	})

	return docs, nil
}

// List returns a page of documents, newest first, with an offset cursor.
func (r *Repo) List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error) {
	if limit <= 0 {
		limit = 20
	}

	offset := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			return nil, "", fmt.Errorf("cursor %q: %w", cursor, domain.ErrInvalidCursor)
		}
		offset = parsed
	}

	all, err := r.All(ctx)
	if err != nil {
		return nil, "", err
	}

	// Reverse to newest-first
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	if offset >= len(all) {
		return []domdoc.Document{}, "", nil
	}

	end := offset + limit
	var nextCursor string
	if end < len(all) {
		nextCursor = strconv.Itoa(end)
	} else {
		end = len(all)
	}

	return all[offset:end], nextCursor, nil
}

// Count returns the number of documents in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.docKey("*"))
	if err != nil {
		return 0, fmt.Errorf("scan documents: %w", err)
	}
	return len(keys), nil
}

func (r *Repo) docKey(id string) string {
	return fmt.Sprintf("%sdoc:%s", r.prefix, id)
}

func (r *Repo) seqKey() string {
	return fmt.Sprintf("%sseq:doc", r.prefix)
}
