package document

import (
	"context"
	"strconv"
	"testing"
	"time"

	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	existsFn       func(ctx context.Context, key string) (bool, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
	incrByFn       func(ctx context.Context, key string, val int64) (int64, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return make([]map[string]string, len(keys)), nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) IncrBy(ctx context.Context, key string, val int64) (int64, error) {
	if m.incrByFn != nil {
		return m.incrByFn(ctx, key, val)
	}
	return 1, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "dochub:")
	return repo, ms
}

var fixtureTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func testDocument(t *testing.T, id string, seq int64) domdoc.Document {
	t.Helper()
	return domdoc.Reconstruct(
		id, "Annual Report 2024",
		domdoc.Facets{
			Department: "Missions Department",
			Ministry:   "Care Ministry",
			DocType:    "Annual Report",
			Status:     "Approved",
		},
		2024, domdoc.Attachment{}, fixtureTime, seq,
	)
}

// testHash is the raw hash form of testDocument, as HGETALL returns it.
func testHash(id string, seq int64) map[string]string {
	return map[string]string{
		"id":         id,
		"title":      "Annual Report 2024",
		"department": "Missions Department",
		"ministry":   "Care Ministry",
		"doc_type":   "Annual Report",
		"status":     "Approved",
		"year":       "2024",
		"created_at": strconv.FormatInt(fixtureTime.UnixMilli(), 10),
		"seq":        strconv.FormatInt(seq, 10),
	}
}
