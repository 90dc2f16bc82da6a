// Package metrics exposes Prometheus collectors for the extraction
// pipeline.
package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesTotal          *prometheus.CounterVec
	rateLimitTotal      prometheus.Counter
	rowsTotal           *prometheus.CounterVec
	extractionFailTotal *prometheus.CounterVec
	entitiesTotal       *prometheus.CounterVec

	once sync.Once
)

// Init registers the collectors on the default registry. It is safe to
// call multiple times.
func Init() {
	once.Do(func() {
		pagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kgcrawl_pages_total",
				Help: "Pages fetched, labeled by HTTP status.",
			},
			[]string{"status"},
		)
		rateLimitTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "kgcrawl_rate_limit_cooldowns_total",
				Help: "Number of 429 cooldown sleeps taken.",
			},
		)
		rowsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kgcrawl_rows_appended_total",
				Help: "Rows appended, labeled by sink.",
			},
			[]string{"sink"},
		)
		extractionFailTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kgcrawl_extraction_failures_total",
				Help: "Field groups that degraded to partial data, labeled by group.",
			},
			[]string{"group"},
		)
		entitiesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kgcrawl_entities_processed_total",
				Help: "Entities marked processed, labeled by kind.",
			},
			[]string{"kind"},
		)
	})
}

// PageFetched records one completed HTTP exchange.
func PageFetched(status int) {
	if pagesTotal != nil {
		pagesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	}
}

// RateLimitCooldown records one 429 cooldown sleep.
func RateLimitCooldown() {
	if rateLimitTotal != nil {
		rateLimitTotal.Inc()
	}
}

// RowAppended records one sink row.
func RowAppended(sink string) {
	if rowsTotal != nil {
		rowsTotal.WithLabelValues(sink).Inc()
	}
}

// ExtractionFailure records a field group that produced partial data.
func ExtractionFailure(group string) {
	if extractionFailTotal != nil {
		extractionFailTotal.WithLabelValues(group).Inc()
	}
}

// EntityProcessed records one entity registered in the crawl state.
func EntityProcessed(kind string) {
	if entitiesTotal != nil {
		entitiesTotal.WithLabelValues(kind).Inc()
	}
}
