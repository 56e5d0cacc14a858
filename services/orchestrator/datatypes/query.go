// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides data structures for the orchestrator service.
//
// This file contains the request and response types for the legal query
// endpoint. Retrieval document types live in document.go.
package datatypes

import (
	"github.com/go-playground/validator/v10"
)

// =============================================================================
// Constants for Security Compliance
// =============================================================================

const (
	// MaxQueryBytes is the maximum size of a single legal query.
	// Queries beyond this are rejected before any processing.
	MaxQueryBytes = 8 * 1024 // 8KB

	// DefaultTopK is the number of documents retrieved when the request
	// does not specify one.
	DefaultTopK = 10

	// MaxTopK caps the number of documents a single request may ask for.
	MaxTopK = 50
)

// =============================================================================
// Shared Validator Instance
// =============================================================================

// queryValidate is the validator instance for query datatypes.
// Initialized in init() with custom validators.
var queryValidate *validator.Validate

func init() {
	queryValidate = validator.New()

	_ = queryValidate.RegisterValidation("querybytes", validateQueryBytes)
}

// validateQueryBytes enforces MaxQueryBytes on string fields. Byte length is
// checked, not rune count, to bound memory regardless of encoding.
func validateQueryBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxQueryBytes
}

// =============================================================================
// Query Request Types
// =============================================================================

// QueryRequest represents a legal query request body.
//
// # Description
//
// QueryRequest is the body for POST /v1/query. The toggles default
// to off so a bare {"query": "..."} request takes the cheapest path: plain
// retrieval plus generation, no cache lookup and no answer audit.
//
// # Fields
//
//   - Query: Required. The legal question, up to 8KB.
//   - TopK: Optional. Number of documents to retrieve (1-50). Default: 10.
//   - UseCache: Optional. Serve and store answers through the TTL cache.
//   - DetectHallucinations: Optional. Run the 7-level answer audit on the
//     generated answer and attach its scores to the response.
//
// # Validation
//
// Uses go-playground/validator:
//   - Query: required, max 8192 bytes
//   - TopK: 0-50 (0 means "use the default")
//
// # Examples
//
//	req := QueryRequest{
//	    Query:                "What is the punishment for theft?",
//	    DetectHallucinations: true,
//	}
//	req.EnsureDefaults()
//	if err := req.Validate(); err != nil { ... }
type QueryRequest struct {
	Query                string `json:"query" validate:"required,querybytes"`
	TopK                 int    `json:"top_k" validate:"gte=0,lte=50"`
	UseCache             bool   `json:"use_cache"`
	DetectHallucinations bool   `json:"detect_hallucinations"`
}

// EnsureDefaults fills zero-valued optional fields with their defaults.
func (r *QueryRequest) EnsureDefaults() {
	if r.TopK == 0 {
		r.TopK = DefaultTopK
	}
}

// Validate checks the request against its validation tags.
func (r *QueryRequest) Validate() error {
	return queryValidate.Struct(r)
}

// =============================================================================
// Query Response Types
// =============================================================================

// QuerySourceInfo is a retrieved document as surfaced to the API caller.
// ContentPreview is truncated; full content never leaves the pipeline.
type QuerySourceInfo struct {
	DocID          string  `json:"doc_id"`
	Source         string  `json:"source"`
	ContentPreview string  `json:"content_preview"`
	FinalScore     float64 `json:"final_score"`
}

// QueryResponse is the full reply for a legal query.
//
// # Description
//
// Every response carries the answer, the sources it drew on, the safety
// verdict, and per-stage timings. Blocked queries return RiskLevel
// "blocked" with IsSafe false and no sources. Educational answers return
// RiskLevel "safe" with a single curated IPC source. LevelScores is empty
// unless the request asked for hallucination detection.
type QueryResponse struct {
	Query   string            `json:"query"`
	Answer  string            `json:"answer"`
	Sources []QuerySourceInfo `json:"sources"`

	// Generation metadata
	Reasoning string `json:"reasoning,omitempty"`

	// Safety metrics
	Confidence         float64            `json:"confidence"`
	HallucinationScore float64            `json:"hallucination_score"`
	RiskLevel          string             `json:"risk_level"`
	IsSafe             bool               `json:"is_safe"`
	LevelScores        map[string]float64 `json:"level_scores"`

	// Cache info
	CacheHit bool `json:"cache_hit"`

	// Performance
	ProcessingTimeMs float64 `json:"processing_time_ms"`
	RetrievalTimeMs  float64 `json:"retrieval_time_ms"`
	GenerationTimeMs float64 `json:"generation_time_ms"`
}
