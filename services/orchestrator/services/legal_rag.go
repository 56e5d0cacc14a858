// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package services provides business logic services for the orchestrator.
//
// This package contains service structs that encapsulate business logic,
// separating it from HTTP handlers. Services are responsible for:
//   - Orchestrating calls to external services (Weaviate, LLM)
//   - Applying business rules and validation
//   - Managing safety screening and error handling
//
// Services are designed to be:
//   - Testable: Dependencies are injected via constructors
//   - Composable: Services can call other services
//   - Traceable: All methods accept context for distributed tracing
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nyaya-ai/nyaya/services/llm"
	"github.com/nyaya-ai/nyaya/services/orchestrator/cache"
	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
	"github.com/nyaya-ai/nyaya/services/orchestrator/intent"
	"github.com/nyaya-ai/nyaya/services/orchestrator/knowledge"
	"github.com/nyaya-ai/nyaya/services/orchestrator/observability"
	"github.com/nyaya-ai/nyaya/services/orchestrator/retrieval"
	"github.com/nyaya-ai/nyaya/services/orchestrator/safety"
)

// legalRAGTracer is the OpenTelemetry tracer for LegalRAGService operations.
var legalRAGTracer = otel.Tracer("nyaya.orchestrator.services.legal_rag")

// ErrValidation marks request validation failures. Handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// Generation tuning for legal answers. Low temperature keeps the model
// close to the retrieved text.
var (
	generationTemperature = float32(0.2)
	generationMaxTokens   = 1024
)

// Presentation constants for responses and the LLM-failure fallback.
const (
	previewLength       = 200
	fallbackDocCount    = 3
	fallbackExcerptSize = 400

	educationalConfidence = 0.95
	retrievalConfidence   = 0.8
	noDocsConfidence      = 0.3
)

// LegalRAGService handles legal query requests end-to-end. It orchestrates
// the flow between:
//   - Intent classifier: Screens queries before any retrieval or generation
//   - Knowledge base: Answers punishment queries from curated IPC data
//   - Retriever: Fetches relevant statutes and judgments from Weaviate
//   - LLM client: Generates answers grounded in retrieved context
//   - Auditor: Checks generated answers for hallucinations on request
//
// The service is stateless apart from the answer cache. This allows
// horizontal scaling of the orchestrator.
//
// Usage:
//
//	service := NewLegalRAGService(classifier, retriever, llmClient, auditor, kb, answerCache, metrics)
//	resp, err := service.Process(ctx, &req)
type LegalRAGService struct {
	classifier intent.Classifier
	retriever  retrieval.Retriever
	llmClient  llm.LLMClient
	auditor    safety.Auditor
	knowledge  *knowledge.Base
	cache      *cache.AnswerCache
	metrics    *observability.QueryMetrics
}

// NewLegalRAGService creates a LegalRAGService with the provided dependencies.
//
// classifier, retriever, llmClient, auditor, and kb must not be nil.
// answerCache and metrics may be nil; caching and metric recording are
// then skipped.
func NewLegalRAGService(
	classifier intent.Classifier,
	retriever retrieval.Retriever,
	llmClient llm.LLMClient,
	auditor safety.Auditor,
	kb *knowledge.Base,
	answerCache *cache.AnswerCache,
	metrics *observability.QueryMetrics,
) *LegalRAGService {
	return &LegalRAGService{
		classifier: classifier,
		retriever:  retriever,
		llmClient:  llmClient,
		auditor:    auditor,
		knowledge:  kb,
		cache:      answerCache,
		metrics:    metrics,
	}
}

// Process handles a legal query end-to-end.
//
// The processing flow is:
//  1. Ensure request defaults and validate
//  2. Classify intent; refuse criminal-planning queries outright
//  3. Answer punishment queries from the curated knowledge base
//  4. Answer concept queries from the curated knowledge base
//  5. Check the answer cache (when enabled)
//  6. Retrieve documents, degrading to an empty set on failure
//  7. Generate the answer, falling back to a document digest on LLM failure
//  8. Audit the answer for hallucinations (when requested)
//
// Blocked, educational, and concept queries short-circuit before
// retrieval; they never touch Weaviate or the LLM.
//
// The method is safe for concurrent use.
func (s *LegalRAGService) Process(ctx context.Context, req *datatypes.QueryRequest) (*datatypes.QueryResponse, error) {
	ctx, span := legalRAGTracer.Start(ctx, "LegalRAGService.Process")
	defer span.End()

	start := time.Now()
	if s.metrics != nil {
		s.metrics.QueryStarted()
		defer s.metrics.QueryEnded()
	}

	req.EnsureDefaults()
	span.SetAttributes(attribute.Int("request.top_k", req.TopK))

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		if s.metrics != nil {
			s.metrics.RecordError(observability.StageValidation)
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	decision := s.classifier.Classify(ctx, req.Query)
	span.SetAttributes(
		attribute.String("intent.category", string(decision.Category)),
		attribute.Float64("intent.confidence", decision.Confidence),
	)

	switch decision.Category {
	case intent.CategoryPureViolence:
		return s.respondBlocked(req, decision, start), nil
	case intent.CategoryPunishmentEducation:
		return s.respondEducational(req, decision, start), nil
	}

	// A general query that resolved to a curated concept is answered from
	// the knowledge base. Retrieval is reserved for queries no concept
	// covers.
	if key := decision.ConceptKey(); key != "" && s.knowledge.HasConcept(key) {
		span.SetAttributes(attribute.String("intent.concept_key", key))
		return s.respondConcept(req, decision, key, start), nil
	}

	if req.UseCache && s.cache != nil {
		if cached, found := s.cache.Get(req.Query); found {
			if s.metrics != nil {
				s.metrics.RecordCacheLookup(true)
				s.metrics.RecordQuery(string(decision.Category), observability.StatusSuccess, time.Since(start).Seconds())
			}
			hit := *cached
			hit.CacheHit = true
			hit.ProcessingTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
			return &hit, nil
		}
		if s.metrics != nil {
			s.metrics.RecordCacheLookup(false)
		}
	}

	// Retrieval failures degrade to an empty document set so the caller
	// still gets an answer shaped response.
	retrievalStart := time.Now()
	docs, err := s.retriever.Retrieve(ctx, req.Query, req.TopK)
	retrievalTime := time.Since(retrievalStart)
	if err != nil {
		slog.Error("Retrieval failed, continuing without documents", "error", err)
		span.RecordError(err)
		if s.metrics != nil {
			s.metrics.RecordError(observability.StageRetrieval)
		}
		docs = nil
	}
	if s.metrics != nil {
		s.metrics.RetrievalDurationSeconds.Observe(retrievalTime.Seconds())
	}
	span.SetAttributes(attribute.Int("retrieval.results", len(docs)))

	generationStart := time.Now()
	answer, generated := s.generate(ctx, req.Query, decision.ConceptKey(), docs)
	generationTime := time.Since(generationStart)
	if s.metrics != nil {
		s.metrics.GenerationDurationSeconds.Observe(generationTime.Seconds())
	}

	resp := &datatypes.QueryResponse{
		Query:            req.Query,
		Answer:           answer,
		Sources:          toSourceInfo(docs),
		Confidence:       retrievalConfidence,
		RiskLevel:        "unknown",
		IsSafe:           true,
		LevelScores:      map[string]float64{},
		RetrievalTimeMs:  float64(retrievalTime.Microseconds()) / 1000.0,
		GenerationTimeMs: float64(generationTime.Microseconds()) / 1000.0,
	}
	if len(docs) == 0 {
		resp.Confidence = noDocsConfidence
	}
	if !generated {
		resp.Reasoning = "llm_unavailable_fallback"
	}

	if req.DetectHallucinations {
		report, err := s.auditor.Audit(ctx, answer, docs, req.Query)
		if err != nil {
			slog.Error("Answer audit failed", "error", err)
			span.RecordError(err)
			if s.metrics != nil {
				s.metrics.RecordError(observability.StageAudit)
			}
		} else {
			resp.HallucinationScore = report.HallucinationScore
			resp.RiskLevel = report.RiskLevel
			resp.IsSafe = report.IsSafe
			resp.LevelScores = report.LevelScores
			resp.Confidence = 1.0 - report.HallucinationScore
			if !report.IsSafe && s.metrics != nil {
				s.metrics.RecordHallucination(report.RiskLevel)
			}
		}
	}

	resp.ProcessingTimeMs = float64(time.Since(start).Microseconds()) / 1000.0

	if req.UseCache && s.cache != nil {
		s.cache.Set(req.Query, resp)
	}
	if s.metrics != nil {
		s.metrics.RecordQuery(string(decision.Category), observability.StatusSuccess, time.Since(start).Seconds())
	}

	span.SetAttributes(
		attribute.Int("response.sources_count", len(resp.Sources)),
		attribute.Float64("response.hallucination_score", resp.HallucinationScore),
	)
	return resp, nil
}

// =============================================================================
// Short-Circuit Responses
// =============================================================================

// respondBlocked builds the refusal for a criminal-planning query.
func (s *LegalRAGService) respondBlocked(req *datatypes.QueryRequest, decision intent.Decision, start time.Time) *datatypes.QueryResponse {
	slog.Warn("Blocked query", "reason", decision.Reason)
	if s.metrics != nil {
		s.metrics.RecordBlocked(decision.Reason)
		s.metrics.RecordQuery(string(decision.Category), observability.StatusBlocked, time.Since(start).Seconds())
	}

	return &datatypes.QueryResponse{
		Query:            req.Query,
		Answer:           decision.Block.Message,
		Sources:          []datatypes.QuerySourceInfo{},
		Confidence:       0,
		RiskLevel:        "blocked",
		IsSafe:           false,
		LevelScores:      map[string]float64{},
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}

// respondEducational answers a punishment query from the curated knowledge
// base. The answer cites a single curated source with full confidence; it
// never went through the LLM, so there is nothing to audit.
func (s *LegalRAGService) respondEducational(req *datatypes.QueryRequest, decision intent.Decision, start time.Time) *datatypes.QueryResponse {
	crimeType := decision.Education.CrimeType
	answer := s.knowledge.FormatPunishmentAnswer(crimeType)

	source := datatypes.QuerySourceInfo{
		DocID:          "curated_" + crimeType,
		Source:         "Indian Penal Code (curated knowledge base)",
		ContentPreview: firstLine(answer),
		FinalScore:     1.0,
	}
	if decision.Education.IPCSection != "" {
		source.DocID = "curated_ipc_" + decision.Education.IPCSection
	}

	if s.metrics != nil {
		s.metrics.RecordQuery(string(decision.Category), observability.StatusEducational, time.Since(start).Seconds())
	}

	return &datatypes.QueryResponse{
		Query:            req.Query,
		Answer:           answer,
		Sources:          []datatypes.QuerySourceInfo{source},
		Confidence:       educationalConfidence,
		RiskLevel:        "safe",
		IsSafe:           true,
		LevelScores:      map[string]float64{"educational": 1.0},
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}

// respondConcept answers a general query that matched a curated legal
// concept. Like the educational path, the answer comes straight from the
// knowledge base and skips retrieval, generation, and auditing.
func (s *LegalRAGService) respondConcept(req *datatypes.QueryRequest, decision intent.Decision, key string, start time.Time) *datatypes.QueryResponse {
	answer := s.knowledge.FormatConceptAnswer(key)

	source := datatypes.QuerySourceInfo{
		DocID:          "curated_concept_" + key,
		Source:         "Curated legal concepts knowledge base",
		ContentPreview: firstLine(answer),
		FinalScore:     1.0,
	}

	if s.metrics != nil {
		s.metrics.RecordQuery(string(decision.Category), observability.StatusEducational, time.Since(start).Seconds())
	}

	return &datatypes.QueryResponse{
		Query:            req.Query,
		Answer:           answer,
		Sources:          []datatypes.QuerySourceInfo{source},
		Confidence:       educationalConfidence,
		RiskLevel:        "safe",
		IsSafe:           true,
		LevelScores:      map[string]float64{"educational": 1.0},
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}

// =============================================================================
// Generation
// =============================================================================

// generate produces the answer text. The boolean reports whether the LLM
// produced it; false means the document-digest fallback was used.
func (s *LegalRAGService) generate(ctx context.Context, query, conceptKey string, docs []datatypes.LegalDocument) (string, bool) {
	ctx, span := legalRAGTracer.Start(ctx, "LegalRAGService.generate")
	defer span.End()

	prompt := buildPrompt(query, conceptKey, docs)
	params := llm.GenerationParams{
		Temperature: &generationTemperature,
		MaxTokens:   &generationMaxTokens,
	}

	answer, err := s.llmClient.Generate(ctx, prompt, params)
	if err == nil && strings.TrimSpace(answer) != "" {
		return answer, true
	}
	if err != nil {
		slog.Error("LLM generation failed, using document fallback", "error", err)
		span.RecordError(err)
		if s.metrics != nil {
			s.metrics.RecordError(observability.StageGeneration)
		}
	}

	return fallbackAnswer(docs), false
}

// buildPrompt assembles the grounded generation prompt. The concept key,
// when present, steers the model toward the matched curated topic.
func buildPrompt(query, conceptKey string, docs []datatypes.LegalDocument) string {
	var sb strings.Builder

	if len(docs) > 0 {
		sb.WriteString("Answer the legal question using ONLY the documents below. ")
		sb.WriteString("Cite documents as [1], [2], etc. If the documents do not ")
		sb.WriteString("cover the question, say so.\n\n")
		for i, doc := range docs {
			fmt.Fprintf(&sb, "[%d] %s (%s)\n%s\n\n", i+1, doc.Title, doc.Source, doc.Content)
		}
	} else {
		sb.WriteString("No documents were retrieved for this question. Answer from ")
		sb.WriteString("general knowledge of Indian law and say that no sources ")
		sb.WriteString("were available.\n\n")
	}

	if conceptKey != "" {
		fmt.Fprintf(&sb, "The question concerns the legal concept %q.\n\n", conceptKey)
	}

	sb.WriteString("Question: ")
	sb.WriteString(query)
	return sb.String()
}

// fallbackAnswer digests the top retrieved documents when the LLM is
// unavailable. The caller still sees grounded content instead of an error.
func fallbackAnswer(docs []datatypes.LegalDocument) string {
	if len(docs) == 0 {
		return "No relevant documents were found in the database, and answer generation is currently unavailable. Please try again later."
	}

	var sb strings.Builder
	sb.WriteString("Based on the documents in the database:\n\n")

	n := fallbackDocCount
	if len(docs) < n {
		n = len(docs)
	}
	for i := 0; i < n; i++ {
		excerpt := docs[i].Content
		if len(excerpt) > fallbackExcerptSize {
			excerpt = excerpt[:fallbackExcerptSize] + "..."
		}
		fmt.Fprintf(&sb, "%d. %s\n%s\n\n", i+1, docs[i].Title, excerpt)
	}

	fmt.Fprintf(&sb, "(Found %d total relevant documents)", len(docs))
	return sb.String()
}

// =============================================================================
// Helpers
// =============================================================================

func toSourceInfo(docs []datatypes.LegalDocument) []datatypes.QuerySourceInfo {
	sources := make([]datatypes.QuerySourceInfo, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, datatypes.QuerySourceInfo{
			DocID:          doc.DocID,
			Source:         doc.Source,
			ContentPreview: doc.Preview(previewLength),
			FinalScore:     doc.Score,
		})
	}
	return sources
}

// firstLine returns the first non-empty line of s, for source previews.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// IsValidationError checks if an error came from request validation.
// This is useful for handlers to determine the appropriate HTTP status code.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
