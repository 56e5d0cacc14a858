// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides metrics and instrumentation for the orchestrator.
//
// # Description
//
// This package implements Prometheus metrics for monitoring the legal query
// pipeline. Metrics include:
//   - Query counters (by intent category and status)
//   - Blocked query and hallucination detection counters
//   - Cache hit/miss counters
//   - Latency histograms (retrieval, generation, end to end)
//
// # Integration
//
// Metrics are exposed via /metrics endpoint. Use with Prometheus + Grafana
// for dashboards and alerting.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Metric Definitions
// =============================================================================

// Namespace for all metrics
const metricsNamespace = "nyaya"

// Subsystem for query pipeline metrics
const querySubsystem = "legal_rag"

// QueryMetrics holds all Prometheus metrics for the legal query pipeline.
//
// # Description
//
// Provides counters, histograms, and gauges for monitoring query volume,
// safety outcomes, and latency. Initialize once at startup via InitMetrics().
//
// # Thread Safety
//
// All operations are thread-safe.
type QueryMetrics struct {
	// QueriesTotal counts processed queries.
	// Labels: intent (PUNISHMENT_EDUCATION, PURE_VIOLENCE, GENERAL_LEGAL),
	// status (success, blocked, educational, error)
	QueriesTotal *prometheus.CounterVec

	// BlockedQueriesTotal counts queries refused by the intent classifier.
	// Labels: reason (violence, rephrase)
	BlockedQueriesTotal *prometheus.CounterVec

	// HallucinationDetectionsTotal counts answers whose hallucination score
	// exceeded the safe threshold.
	// Labels: risk_level (medium, high, critical)
	HallucinationDetectionsTotal *prometheus.CounterVec

	// CacheHitsTotal counts answer cache hits.
	CacheHitsTotal prometheus.Counter

	// CacheMissesTotal counts answer cache misses.
	CacheMissesTotal prometheus.Counter

	// QueryDurationSeconds measures end-to-end query processing time.
	// Labels: status (success, blocked, educational, error)
	QueryDurationSeconds *prometheus.HistogramVec

	// RetrievalDurationSeconds measures document retrieval time.
	RetrievalDurationSeconds prometheus.Histogram

	// GenerationDurationSeconds measures LLM generation time.
	GenerationDurationSeconds prometheus.Histogram

	// ActiveQueries tracks queries currently being processed.
	ActiveQueries prometheus.Gauge

	// ErrorsTotal counts pipeline errors by stage.
	// Labels: stage (validation, retrieval, generation, audit)
	ErrorsTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance of QueryMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *QueryMetrics

// InitMetrics initializes the default metrics instance.
//
// Creates and registers all Prometheus metrics. Should be called once at
// application startup; calling twice panics on duplicate registration.
func InitMetrics() *QueryMetrics {
	DefaultMetrics = &QueryMetrics{
		QueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "queries_total",
				Help:      "Total queries processed by intent category and status",
			},
			[]string{"intent", "status"},
		),

		BlockedQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "blocked_queries_total",
				Help:      "Total queries blocked by the intent classifier",
			},
			[]string{"reason"},
		),

		HallucinationDetectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "hallucination_detections_total",
				Help:      "Total answers flagged above the safe hallucination threshold",
			},
			[]string{"risk_level"},
		),

		CacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "cache_hits_total",
				Help:      "Total answer cache hits",
			},
		),

		CacheMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "cache_misses_total",
				Help:      "Total answer cache misses",
			},
		),

		QueryDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "query_duration_seconds",
				Help:      "End-to-end query processing time in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
			},
			[]string{"status"},
		),

		RetrievalDurationSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "retrieval_duration_seconds",
				Help:      "Document retrieval time in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
		),

		GenerationDurationSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "generation_duration_seconds",
				Help:      "LLM generation time in seconds",
				Buckets:   []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
			},
		),

		ActiveQueries: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "active_queries",
				Help:      "Number of queries currently being processed",
			},
		),

		ErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: querySubsystem,
				Name:      "errors_total",
				Help:      "Total pipeline errors by stage",
			},
			[]string{"stage"},
		),
	}

	return DefaultMetrics
}

// =============================================================================
// Label Values
// =============================================================================

// QueryStatus labels a completed query for metrics.
type QueryStatus string

const (
	// StatusSuccess indicates a normal RAG answer was returned.
	StatusSuccess QueryStatus = "success"

	// StatusBlocked indicates the query was refused.
	StatusBlocked QueryStatus = "blocked"

	// StatusEducational indicates a curated educational answer was returned.
	StatusEducational QueryStatus = "educational"

	// StatusError indicates the pipeline failed.
	StatusError QueryStatus = "error"
)

// PipelineStage labels where in the pipeline an error occurred.
type PipelineStage string

const (
	StageValidation PipelineStage = "validation"
	StageRetrieval  PipelineStage = "retrieval"
	StageGeneration PipelineStage = "generation"
	StageAudit      PipelineStage = "audit"
)

// =============================================================================
// Helper Methods
// =============================================================================

// RecordQuery records a completed query with its total duration.
func (m *QueryMetrics) RecordQuery(intent string, status QueryStatus, seconds float64) {
	m.QueriesTotal.WithLabelValues(intent, string(status)).Inc()
	m.QueryDurationSeconds.WithLabelValues(string(status)).Observe(seconds)
}

// RecordBlocked records a query refused by the classifier.
func (m *QueryMetrics) RecordBlocked(reason string) {
	m.BlockedQueriesTotal.WithLabelValues(reason).Inc()
}

// RecordHallucination records an answer flagged above the safe threshold.
func (m *QueryMetrics) RecordHallucination(riskLevel string) {
	m.HallucinationDetectionsTotal.WithLabelValues(riskLevel).Inc()
}

// RecordCacheLookup records a cache hit or miss.
func (m *QueryMetrics) RecordCacheLookup(hit bool) {
	if hit {
		m.CacheHitsTotal.Inc()
	} else {
		m.CacheMissesTotal.Inc()
	}
}

// RecordError records a pipeline error at the given stage.
func (m *QueryMetrics) RecordError(stage PipelineStage) {
	m.ErrorsTotal.WithLabelValues(string(stage)).Inc()
}

// QueryStarted increments the active query gauge.
func (m *QueryMetrics) QueryStarted() {
	m.ActiveQueries.Inc()
}

// QueryEnded decrements the active query gauge.
func (m *QueryMetrics) QueryEnded() {
	m.ActiveQueries.Dec()
}
