package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog write-path Prometheus metrics. Label values for documents come
// from the facet vocabulary, so cardinality stays bounded.
var (
	DocumentsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dochub",
			Name:      "documents_created_total",
			Help:      "Total number of documents added to the catalog",
		},
		[]string{"department", "doc_type"},
	)

	UploadURLsIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dochub",
			Name:      "upload_urls_issued_total",
			Help:      "Total number of attachment upload URLs issued",
		},
		[]string{"content_type"},
	)

	UploadRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dochub",
			Name:      "upload_rejections_total",
			Help:      "Total number of rejected upload requests",
		},
		[]string{"reason"}, // content_type, file_name, size, presign
	)
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers Prometheus catalog metrics. Must be called once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(DocumentsCreatedTotal)
	prometheus.MustRegister(UploadURLsIssuedTotal)
	prometheus.MustRegister(UploadRejectionsTotal)
	catalogMetricsRegistered = true
}
