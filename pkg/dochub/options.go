package dochub

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

// Presigner issues presigned upload URLs against object storage.
// Required for attachment uploads; the rest of the catalog works without it.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, sizeBytes int64, expiry time.Duration) (string, error)
}

type s3Config struct {
	endpoint        string
	region          string
	bucket          string
	accessKeyID     string
	secretAccessKey string
}

type clientConfig struct {
	driver   string // "redis" or "memory"
	addrs    []string
	password string

	keyPrefix       string
	vocabulary      map[string][]string
	dictionaries    []Dictionary
	dictionaryFiles []string

	defaultPageSize int
	maxPageSize     int

	presigner Presigner
	s3        *s3Config
	maxSizeMB int
	urlExpiry time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis or Valkey instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithMemory runs the catalog on an in-process store. Useful for tests
// and single-node deployments; data does not survive the process.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
	})
}

// WithKeyPrefix sets the key namespace for stored documents.
// Default: "dochub:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithVocabulary overrides facet values. Keys are category names
// (department, ministry, doc_type, status); a listed category replaces
// the built-in values wholesale, unlisted categories keep them.
func WithVocabulary(values map[string][]string) Option {
	return optionFunc(func(c *clientConfig) {
		c.vocabulary = values
	})
}

// WithDictionaries adds locale dictionaries for label and title rendering.
func WithDictionaries(dicts ...Dictionary) Option {
	return optionFunc(func(c *clientConfig) {
		c.dictionaries = append(c.dictionaries, dicts...)
	})
}

// WithDictionaryFiles loads locale dictionaries from YAML files.
func WithDictionaryFiles(paths ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.dictionaryFiles = append(c.dictionaryFiles, paths...)
	})
}

// WithPagination sets the default and maximum page sizes for listings.
// Defaults: 20 and 100.
func WithPagination(defaultSize, maxSize int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultPageSize = defaultSize
		c.maxPageSize = maxSize
	})
}

// WithPresigner enables attachment uploads through a custom presigner.
func WithPresigner(p Presigner) Option {
	return optionFunc(func(c *clientConfig) {
		c.presigner = p
	})
}

// WithS3Storage enables attachment uploads against an S3-compatible
// endpoint (AWS S3, Cloudflare R2, MinIO).
func WithS3Storage(endpoint, region, bucket, accessKeyID, secretAccessKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.s3 = &s3Config{
			endpoint:        endpoint,
			region:          region,
			bucket:          bucket,
			accessKeyID:     accessKeyID,
			secretAccessKey: secretAccessKey,
		}
	})
}

// WithAttachmentLimits sets the upload size cap and URL expiry.
// Defaults: 15 MB and 5 minutes.
func WithAttachmentLimits(maxSizeMB int, urlExpiry time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxSizeMB = maxSizeMB
		c.urlExpiry = urlExpiry
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
