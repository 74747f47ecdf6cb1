// Package metrics holds the Prometheus collectors for plan generation,
// archive building and the configuration store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansGenerated counts assembled plans.
	// Labels: project_type
	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vca",
			Name:      "plans_generated_total",
			Help:      "Total number of project plans generated",
		},
		[]string{"project_type"},
	)

	// ArchivesBuilt counts download archives.
	// Labels: result (success, error)
	ArchivesBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vca",
			Name:      "archives_built_total",
			Help:      "Total number of scaffold archives built",
		},
		[]string{"result"},
	)

	ArchiveSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vca",
			Name:      "archive_size_bytes",
			Help:      "Size of built scaffold archives in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
		},
	)

	ProjectsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vca",
			Name:      "projects_created_total",
			Help:      "Total number of stored project configurations",
		},
	)

	// CacheRequests counts project cache lookups.
	// Labels: result (hit, miss, error)
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vca",
			Name:      "project_cache_requests_total",
			Help:      "Total number of project cache lookups",
		},
		[]string{"result"},
	)
)
