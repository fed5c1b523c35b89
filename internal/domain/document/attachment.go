package document

import "fmt"

// Attachment is an opaque reference to a stored file. The catalog never
// inspects attachment contents; it only carries the reference.
type Attachment struct {
	objectKey   string
	fileName    string
	contentType string
	sizeBytes   int64
}

// NewAttachment validates and creates an Attachment.
func NewAttachment(objectKey, fileName, contentType string, sizeBytes int64) (Attachment, error) {
	if objectKey == "" {
		return Attachment{}, fmt.Errorf("attachment object key is required")
	}
	if fileName == "" {
		return Attachment{}, fmt.Errorf("attachment file name is required")
	}
	if sizeBytes < 0 {
		return Attachment{}, fmt.Errorf("attachment size must not be negative")
	}
	return Attachment{
		objectKey:   objectKey,
		fileName:    fileName,
		contentType: contentType,
		sizeBytes:   sizeBytes,
	}, nil
}

// ReconstructAttachment creates an Attachment without validation (storage hydration).
func ReconstructAttachment(objectKey, fileName, contentType string, sizeBytes int64) Attachment {
	return Attachment{
		objectKey:   objectKey,
		fileName:    fileName,
		contentType: contentType,
		sizeBytes:   sizeBytes,
	}
}

// IsZero reports whether the attachment is absent.
func (a Attachment) IsZero() bool { return a == Attachment{} }

// ObjectKey returns the storage object key.
func (a Attachment) ObjectKey() string { return a.objectKey }

// FileName returns the original file name.
func (a Attachment) FileName() string { return a.fileName }

// ContentType returns the MIME content type.
func (a Attachment) ContentType() string { return a.contentType }

// SizeBytes returns the file size in bytes.
func (a Attachment) SizeBytes() int64 { return a.sizeBytes }
