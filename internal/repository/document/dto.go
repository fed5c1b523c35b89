package document

import (
	"fmt"
	"strconv"
	"time"

	domdoc "github.com/HKKoho/DocumentHub/internal/domain/document"
)

// docToHash converts a domain Document to a map for HSET.
func docToHash(doc domdoc.Document) map[string]string {
	f := doc.Facets()
	m := map[string]string{
		"id":         doc.ID(),
		"title":      doc.Title(),
		"department": f.Department,
		"ministry":   f.Ministry,
		"doc_type":   f.DocType,
		"status":     f.Status,
		"year":       strconv.Itoa(doc.Year()),
		"created_at": strconv.FormatInt(doc.CreatedAt().UnixMilli(), 10),
		"seq":        strconv.FormatInt(doc.Seq(), 10),
	}
	if doc.HasAttachment() {
		att := doc.Attachment()
		m["att_object_key"] = att.ObjectKey()
		m["att_file_name"] = att.FileName()
		m["att_content_type"] = att.ContentType()
		m["att_size_bytes"] = strconv.FormatInt(att.SizeBytes(), 10)
	}
	return m
}

// docFromHash hydrates a domain Document from an HGETALL result map.
func docFromHash(m map[string]string) (domdoc.Document, error) {
	year, err := strconv.Atoi(m["year"])
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("invalid year: %w", err)
	}

	createdAtMs, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("invalid created_at: %w", err)
	}

	seq, err := strconv.ParseInt(m["seq"], 10, 64)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("invalid seq: %w", err)
	}

	var att domdoc.Attachment
	if objectKey := m["att_object_key"]; objectKey != "" {
		sizeBytes, err := strconv.ParseInt(m["att_size_bytes"], 10, 64)
		if err != nil {
			return domdoc.Document{}, fmt.Errorf("invalid att_size_bytes: %w", err)
		}
		att = domdoc.ReconstructAttachment(
			objectKey, m["att_file_name"], m["att_content_type"], sizeBytes,
		)
	}

	facets := domdoc.Facets{
		Department: m["department"],
		Ministry:   m["ministry"],
		DocType:    m["doc_type"],
		Status:     m["status"],
	}

	return domdoc.Reconstruct(
		m["id"], m["title"], facets, year,
		att, time.UnixMilli(createdAtMs).UTC(), seq,
	), nil
}
