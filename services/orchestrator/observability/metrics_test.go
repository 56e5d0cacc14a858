// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// ============================================================================
// Test Helper: Create isolated metrics for testing
// ============================================================================

// newTestMetrics creates a QueryMetrics instance with a custom registry.
// This avoids conflicts with the global Prometheus registry and allows
// parallel testing.
func newTestMetrics(t *testing.T) *QueryMetrics {
	t.Helper()

	reg := prometheus.NewRegistry()

	queriesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "queries_total",
			Help:      "Total queries processed by intent category and status",
		},
		[]string{"intent", "status"},
	)

	blockedQueriesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "blocked_queries_total",
			Help:      "Total queries blocked by the intent classifier",
		},
		[]string{"reason"},
	)

	hallucinationDetectionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "hallucination_detections_total",
			Help:      "Total answers flagged above the safe hallucination threshold",
		},
		[]string{"risk_level"},
	)

	cacheHitsTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "cache_hits_total",
			Help:      "Total answer cache hits",
		},
	)

	cacheMissesTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "cache_misses_total",
			Help:      "Total answer cache misses",
		},
	)

	queryDurationSeconds := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "query_duration_seconds",
			Help:      "End-to-end query processing time in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
		[]string{"status"},
	)

	retrievalDurationSeconds := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "retrieval_duration_seconds",
			Help:      "Document retrieval time in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)

	generationDurationSeconds := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "generation_duration_seconds",
			Help:      "LLM generation time in seconds",
			Buckets:   []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		},
	)

	activeQueries := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "active_queries",
			Help:      "Number of queries currently being processed",
		},
	)

	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: querySubsystem,
			Name:      "errors_total",
			Help:      "Total pipeline errors by stage",
		},
		[]string{"stage"},
	)

	reg.MustRegister(
		queriesTotal,
		blockedQueriesTotal,
		hallucinationDetectionsTotal,
		cacheHitsTotal,
		cacheMissesTotal,
		queryDurationSeconds,
		retrievalDurationSeconds,
		generationDurationSeconds,
		activeQueries,
		errorsTotal,
	)

	return &QueryMetrics{
		QueriesTotal:                 queriesTotal,
		BlockedQueriesTotal:          blockedQueriesTotal,
		HallucinationDetectionsTotal: hallucinationDetectionsTotal,
		CacheHitsTotal:               cacheHitsTotal,
		CacheMissesTotal:             cacheMissesTotal,
		QueryDurationSeconds:         queryDurationSeconds,
		RetrievalDurationSeconds:     retrievalDurationSeconds,
		GenerationDurationSeconds:    generationDurationSeconds,
		ActiveQueries:                activeQueries,
		ErrorsTotal:                  errorsTotal,
	}
}

// ============================================================================
// InitMetrics Tests
// ============================================================================

// Note: InitMetrics uses promauto which registers with the default Prometheus
// registry. This test must only run once per test binary execution since
// duplicate registration will panic.
var initMetricsTestOnce bool

func TestInitMetrics(t *testing.T) {
	if initMetricsTestOnce {
		t.Skip("InitMetrics can only be called once per test run (promauto restriction)")
	}
	initMetricsTestOnce = true

	result := InitMetrics()

	if result == nil {
		t.Fatal("InitMetrics() returned nil")
	}
	if DefaultMetrics != result {
		t.Error("DefaultMetrics should equal the returned value")
	}
	if result.QueriesTotal == nil || result.BlockedQueriesTotal == nil ||
		result.HallucinationDetectionsTotal == nil || result.CacheHitsTotal == nil ||
		result.CacheMissesTotal == nil || result.QueryDurationSeconds == nil ||
		result.RetrievalDurationSeconds == nil || result.GenerationDurationSeconds == nil ||
		result.ActiveQueries == nil || result.ErrorsTotal == nil {
		t.Error("all metric fields should be initialized")
	}

	// Verify metrics can be used
	result.RecordQuery("GENERAL_LEGAL", StatusSuccess, 0.2)
	result.RecordBlocked("violence")
	result.RecordCacheLookup(true)
	result.QueryStarted()
	result.QueryEnded()
}

// ============================================================================
// Constants Tests
// ============================================================================

func TestConstants(t *testing.T) {
	if metricsNamespace != "nyaya" {
		t.Errorf("metricsNamespace = %q, want %q", metricsNamespace, "nyaya")
	}
	if querySubsystem != "legal_rag" {
		t.Errorf("querySubsystem = %q, want %q", querySubsystem, "legal_rag")
	}
}

func TestStatusConstants(t *testing.T) {
	tests := []struct {
		status QueryStatus
		want   string
	}{
		{StatusSuccess, "success"},
		{StatusBlocked, "blocked"},
		{StatusEducational, "educational"},
		{StatusError, "error"},
	}
	for _, tt := range tests {
		if string(tt.status) != tt.want {
			t.Errorf("QueryStatus = %q, want %q", tt.status, tt.want)
		}
	}
}

// ============================================================================
// Recording Tests
// ============================================================================

func TestQueryMetrics_RecordQuery(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordQuery("PUNISHMENT_EDUCATION", StatusEducational, 0.01)
	m.RecordQuery("GENERAL_LEGAL", StatusSuccess, 1.5)
	m.RecordQuery("GENERAL_LEGAL", StatusSuccess, 0.8)

	val := testutil.ToFloat64(m.QueriesTotal.WithLabelValues("GENERAL_LEGAL", "success"))
	if val != 2 {
		t.Errorf("QueriesTotal[GENERAL_LEGAL,success] = %f, want 2", val)
	}
	val = testutil.ToFloat64(m.QueriesTotal.WithLabelValues("PUNISHMENT_EDUCATION", "educational"))
	if val != 1 {
		t.Errorf("QueriesTotal[PUNISHMENT_EDUCATION,educational] = %f, want 1", val)
	}
}

func TestQueryMetrics_RecordBlocked(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordBlocked("violence")
	m.RecordBlocked("violence")
	m.RecordBlocked("rephrase")

	if v := testutil.ToFloat64(m.BlockedQueriesTotal.WithLabelValues("violence")); v != 2 {
		t.Errorf("BlockedQueriesTotal[violence] = %f, want 2", v)
	}
	if v := testutil.ToFloat64(m.BlockedQueriesTotal.WithLabelValues("rephrase")); v != 1 {
		t.Errorf("BlockedQueriesTotal[rephrase] = %f, want 1", v)
	}
}

func TestQueryMetrics_RecordHallucination(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordHallucination("high")
	m.RecordHallucination("critical")
	m.RecordHallucination("high")

	if v := testutil.ToFloat64(m.HallucinationDetectionsTotal.WithLabelValues("high")); v != 2 {
		t.Errorf("HallucinationDetectionsTotal[high] = %f, want 2", v)
	}
	if v := testutil.ToFloat64(m.HallucinationDetectionsTotal.WithLabelValues("critical")); v != 1 {
		t.Errorf("HallucinationDetectionsTotal[critical] = %f, want 1", v)
	}
}

func TestQueryMetrics_RecordCacheLookup(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	m.RecordCacheLookup(false)

	if v := testutil.ToFloat64(m.CacheHitsTotal); v != 1 {
		t.Errorf("CacheHitsTotal = %f, want 1", v)
	}
	if v := testutil.ToFloat64(m.CacheMissesTotal); v != 2 {
		t.Errorf("CacheMissesTotal = %f, want 2", v)
	}
}

func TestQueryMetrics_RecordError(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordError(StageRetrieval)
	m.RecordError(StageGeneration)
	m.RecordError(StageGeneration)

	if v := testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("generation")); v != 2 {
		t.Errorf("ErrorsTotal[generation] = %f, want 2", v)
	}
	if v := testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("retrieval")); v != 1 {
		t.Errorf("ErrorsTotal[retrieval] = %f, want 1", v)
	}
}

func TestQueryMetrics_ActiveQueryLifecycle(t *testing.T) {
	m := newTestMetrics(t)

	m.QueryStarted()
	m.QueryStarted()
	if v := testutil.ToFloat64(m.ActiveQueries); v != 2 {
		t.Errorf("ActiveQueries = %f, want 2", v)
	}

	m.QueryEnded()
	m.QueryEnded()
	if v := testutil.ToFloat64(m.ActiveQueries); v != 0 {
		t.Errorf("ActiveQueries after ends = %f, want 0", v)
	}
}

// ============================================================================
// Integration / Scenario Tests
// ============================================================================

func TestQueryMetrics_BlockedQueryScenario(t *testing.T) {
	m := newTestMetrics(t)

	m.QueryStarted()
	m.RecordBlocked("violence")
	m.RecordQuery("PURE_VIOLENCE", StatusBlocked, 0.002)
	m.QueryEnded()

	if v := testutil.ToFloat64(m.ActiveQueries); v != 0 {
		t.Errorf("ActiveQueries should be 0, got %f", v)
	}
	if v := testutil.ToFloat64(m.QueriesTotal.WithLabelValues("PURE_VIOLENCE", "blocked")); v != 1 {
		t.Errorf("QueriesTotal[PURE_VIOLENCE,blocked] = %f, want 1", v)
	}
}

func TestQueryMetrics_RAGQueryScenario(t *testing.T) {
	m := newTestMetrics(t)

	m.QueryStarted()
	m.RecordCacheLookup(false)
	m.RetrievalDurationSeconds.Observe(0.12)
	m.GenerationDurationSeconds.Observe(2.4)
	m.RecordHallucination("medium")
	m.RecordQuery("GENERAL_LEGAL", StatusSuccess, 2.6)
	m.QueryEnded()

	if v := testutil.ToFloat64(m.CacheMissesTotal); v != 1 {
		t.Errorf("CacheMissesTotal = %f, want 1", v)
	}
	if count := testutil.CollectAndCount(m.RetrievalDurationSeconds); count == 0 {
		t.Error("expected retrieval duration to be collected")
	}
}

// ============================================================================
// Concurrent Safety Tests
// ============================================================================

func TestQueryMetrics_ConcurrentSafety(t *testing.T) {
	m := newTestMetrics(t)

	done := make(chan bool, 60)

	for i := 0; i < 20; i++ {
		go func() {
			m.RecordQuery("GENERAL_LEGAL", StatusSuccess, 0.1)
			done <- true
		}()
	}
	for i := 0; i < 20; i++ {
		go func() {
			m.RecordCacheLookup(true)
			done <- true
		}()
	}
	for i := 0; i < 20; i++ {
		go func() {
			m.QueryStarted()
			m.QueryEnded()
			done <- true
		}()
	}

	for i := 0; i < 60; i++ {
		<-done
	}

	if v := testutil.ToFloat64(m.QueriesTotal.WithLabelValues("GENERAL_LEGAL", "success")); v != 20 {
		t.Errorf("QueriesTotal[GENERAL_LEGAL,success] = %f, want 20", v)
	}
	if v := testutil.ToFloat64(m.CacheHitsTotal); v != 20 {
		t.Errorf("CacheHitsTotal = %f, want 20", v)
	}
	if v := testutil.ToFloat64(m.ActiveQueries); v != 0 {
		t.Errorf("ActiveQueries = %f, want 0", v)
	}
}
