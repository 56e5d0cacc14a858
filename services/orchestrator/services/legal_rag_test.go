// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nyaya-ai/nyaya/services/llm"
	"github.com/nyaya-ai/nyaya/services/orchestrator/cache"
	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
	"github.com/nyaya-ai/nyaya/services/orchestrator/intent"
	"github.com/nyaya-ai/nyaya/services/orchestrator/knowledge"
	"github.com/nyaya-ai/nyaya/services/orchestrator/safety"
)

// =============================================================================
// Test Doubles
// =============================================================================

type stubClassifier struct {
	decision intent.Decision
}

func (s *stubClassifier) Classify(_ context.Context, _ string) intent.Decision {
	return s.decision
}

type stubRetriever struct {
	docs  []datatypes.LegalDocument
	err   error
	calls int
}

func (s *stubRetriever) Retrieve(_ context.Context, _ string, _ int) ([]datatypes.LegalDocument, error) {
	s.calls++
	return s.docs, s.err
}

type stubLLM struct {
	answer string
	err    error
	calls  int
}

func (s *stubLLM) Generate(_ context.Context, _ string, _ llm.GenerationParams) (string, error) {
	s.calls++
	return s.answer, s.err
}

func generalDecision() intent.Decision {
	return intent.Decision{
		Category:   intent.CategoryGeneralLegal,
		Safe:       true,
		Reason:     "general legal query",
		Confidence: 0.7,
	}
}

func newTestService(cls intent.Classifier, ret *stubRetriever, gen *stubLLM, answerCache *cache.AnswerCache) *LegalRAGService {
	return NewLegalRAGService(
		cls,
		ret,
		gen,
		safety.NewDetector(),
		knowledge.MustLoad(),
		answerCache,
		nil,
	)
}

func testDocs() []datatypes.LegalDocument {
	return []datatypes.LegalDocument{
		{
			DocID:   "ipc_302",
			Source:  "Indian Penal Code",
			Title:   "Section 302 - Punishment for murder",
			Content: "Whoever commits murder shall be punished with death or imprisonment for life and shall also be liable to fine.",
			DocType: "statute",
			Year:    1860,
			Score:   12.5,
		},
		{
			DocID:   "ipc_300",
			Source:  "Indian Penal Code",
			Title:   "Section 300 - Murder",
			Content: "Culpable homicide is murder if the act is done with the intention of causing death.",
			DocType: "statute",
			Year:    1860,
			Score:   10.1,
		},
	}
}

// =============================================================================
// Process Tests
// =============================================================================

func TestProcess_ValidationFailure(t *testing.T) {
	svc := newTestService(&stubClassifier{decision: generalDecision()}, &stubRetriever{}, &stubLLM{}, nil)

	_, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: ""})
	if err == nil {
		t.Fatal("expected validation error for empty query")
	}
	if !IsValidationError(err) {
		t.Errorf("error should wrap ErrValidation, got %v", err)
	}
}

func TestProcess_BlockedQuery(t *testing.T) {
	cls := &stubClassifier{decision: intent.Decision{
		Category:   intent.CategoryPureViolence,
		Safe:       false,
		Reason:     "violence",
		Confidence: 0.95,
		Block:      &intent.BlockDirective{Message: intent.BlockMessageViolence},
	}}
	gen := &stubLLM{answer: "should never be called"}
	svc := newTestService(cls, &stubRetriever{docs: testDocs()}, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "how do I hurt someone"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if resp.Answer != intent.BlockMessageViolence {
		t.Errorf("answer = %q, want block message", resp.Answer)
	}
	if resp.IsSafe {
		t.Error("blocked response must not be safe")
	}
	if resp.RiskLevel != "blocked" {
		t.Errorf("risk level = %q, want blocked", resp.RiskLevel)
	}
	if resp.Confidence != 0 {
		t.Errorf("confidence = %f, want 0", resp.Confidence)
	}
	if len(resp.Sources) != 0 {
		t.Errorf("blocked response has %d sources, want 0", len(resp.Sources))
	}
	if gen.calls != 0 {
		t.Error("blocked query must never reach the LLM")
	}
}

func TestProcess_EducationalQuery(t *testing.T) {
	cls := &stubClassifier{decision: intent.Decision{
		Category:   intent.CategoryPunishmentEducation,
		Safe:       true,
		Reason:     "punishment education",
		Confidence: 0.9,
		Education:  &intent.EducationDirective{IPCSection: "302", CrimeType: "murder"},
	}}
	gen := &stubLLM{answer: "should never be called"}
	svc := newTestService(cls, &stubRetriever{docs: testDocs()}, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "what is the punishment for murder"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !strings.Contains(resp.Answer, "LEGAL CONSEQUENCES") {
		t.Error("educational answer should come from the curated knowledge base")
	}
	if !strings.Contains(resp.Answer, "IPC Section 302") {
		t.Error("educational answer should cite the IPC section")
	}
	if resp.Confidence != educationalConfidence {
		t.Errorf("confidence = %f, want %f", resp.Confidence, educationalConfidence)
	}
	if resp.RiskLevel != "safe" || !resp.IsSafe {
		t.Error("curated answers are safe by construction")
	}
	if got := resp.LevelScores["educational"]; got != 1.0 {
		t.Errorf("level_scores[educational] = %f, want 1.0", got)
	}
	if len(resp.Sources) != 1 {
		t.Fatalf("educational response has %d sources, want 1", len(resp.Sources))
	}
	if resp.Sources[0].DocID != "curated_ipc_302" {
		t.Errorf("source doc_id = %q, want curated_ipc_302", resp.Sources[0].DocID)
	}
	if resp.Sources[0].FinalScore != 1.0 {
		t.Errorf("curated source score = %f, want 1.0", resp.Sources[0].FinalScore)
	}
	if gen.calls != 0 {
		t.Error("educational query must never reach the LLM")
	}
}

func TestProcess_ConceptQuery(t *testing.T) {
	cls := &stubClassifier{decision: intent.Decision{
		Category:   intent.CategoryGeneralLegal,
		Safe:       true,
		Reason:     "legal concept: habeas_corpus",
		Confidence: 0.9,
		Concept:    &intent.ConceptDirective{Key: "habeas_corpus"},
	}}
	ret := &stubRetriever{docs: testDocs()}
	gen := &stubLLM{answer: "should never be called"}
	svc := newTestService(cls, ret, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "what is habeas corpus"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !strings.Contains(resp.Answer, "Habeas Corpus") {
		t.Error("concept answer should come from the curated knowledge base")
	}
	if resp.Confidence != educationalConfidence {
		t.Errorf("confidence = %f, want %f", resp.Confidence, educationalConfidence)
	}
	if resp.RiskLevel != "safe" || !resp.IsSafe {
		t.Error("curated answers are safe by construction")
	}
	if len(resp.Sources) != 1 {
		t.Fatalf("concept response has %d sources, want 1", len(resp.Sources))
	}
	if resp.Sources[0].DocID != "curated_concept_habeas_corpus" {
		t.Errorf("source doc_id = %q, want curated_concept_habeas_corpus", resp.Sources[0].DocID)
	}
	if ret.calls != 0 {
		t.Error("concept query must never reach the retriever")
	}
	if gen.calls != 0 {
		t.Error("concept query must never reach the LLM")
	}
}

// An unknown concept key falls through to the retrieval pipeline instead
// of serving the generic fallback record.
func TestProcess_UnknownConceptFallsThrough(t *testing.T) {
	cls := &stubClassifier{decision: intent.Decision{
		Category:   intent.CategoryGeneralLegal,
		Safe:       true,
		Reason:     "legal concept: maritime_salvage",
		Confidence: 0.9,
		Concept:    &intent.ConceptDirective{Key: "maritime_salvage"},
	}}
	gen := &stubLLM{answer: "Salvage claims are governed by admiralty jurisdiction [1]."}
	ret := &stubRetriever{docs: testDocs()}
	svc := newTestService(cls, ret, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "law on maritime salvage"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if ret.calls != 1 {
		t.Errorf("retriever calls = %d, want 1", ret.calls)
	}
	if gen.calls != 1 {
		t.Errorf("LLM calls = %d, want 1", gen.calls)
	}
	if resp.Answer != gen.answer {
		t.Errorf("answer = %q, want LLM output", resp.Answer)
	}
}

func TestProcess_GeneralQuery(t *testing.T) {
	gen := &stubLLM{answer: "Murder is punished under Section 302 with death or life imprisonment [1]."}
	svc := newTestService(&stubClassifier{decision: generalDecision()}, &stubRetriever{docs: testDocs()}, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "what does section 302 say"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if resp.Answer != gen.answer {
		t.Errorf("answer = %q, want LLM output", resp.Answer)
	}
	if len(resp.Sources) != 2 {
		t.Errorf("sources = %d, want 2", len(resp.Sources))
	}
	if resp.Sources[0].DocID != "ipc_302" {
		t.Errorf("first source = %q, want ipc_302", resp.Sources[0].DocID)
	}
	if resp.CacheHit {
		t.Error("uncached request reported a cache hit")
	}
	if resp.Confidence != retrievalConfidence {
		t.Errorf("confidence = %f, want %f", resp.Confidence, retrievalConfidence)
	}
	if resp.Reasoning != "" {
		t.Errorf("reasoning = %q, want empty for normal generation", resp.Reasoning)
	}
}

func TestProcess_LLMFailureFallback(t *testing.T) {
	gen := &stubLLM{err: errors.New("connection refused")}
	svc := newTestService(&stubClassifier{decision: generalDecision()}, &stubRetriever{docs: testDocs()}, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "what does section 302 say"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !strings.HasPrefix(resp.Answer, "Based on the documents in the database:") {
		t.Errorf("fallback answer = %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Section 302 - Punishment for murder") {
		t.Error("fallback should list document titles")
	}
	if !strings.Contains(resp.Answer, "(Found 2 total relevant documents)") {
		t.Error("fallback should report the total document count")
	}
	if resp.Reasoning != "llm_unavailable_fallback" {
		t.Errorf("reasoning = %q, want llm_unavailable_fallback", resp.Reasoning)
	}
}

func TestProcess_RetrievalFailureDegrades(t *testing.T) {
	gen := &stubLLM{answer: "I could not find sources, but under Indian law murder is covered by Section 302."}
	ret := &stubRetriever{err: errors.New("weaviate unreachable")}
	svc := newTestService(&stubClassifier{decision: generalDecision()}, ret, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "what does section 302 say"})
	if err != nil {
		t.Fatalf("retrieval failure should degrade, not fail: %v", err)
	}

	if len(resp.Sources) != 0 {
		t.Errorf("sources = %d, want 0 after retrieval failure", len(resp.Sources))
	}
	if resp.Confidence != noDocsConfidence {
		t.Errorf("confidence = %f, want %f", resp.Confidence, noDocsConfidence)
	}
	if resp.Answer != gen.answer {
		t.Error("LLM answer should still be returned without documents")
	}
}

func TestProcess_CacheRoundTrip(t *testing.T) {
	gen := &stubLLM{answer: "Section 302 prescribes death or life imprisonment [1]."}
	answerCache := cache.NewAnswerCache(time.Minute, time.Minute)
	svc := newTestService(&stubClassifier{decision: generalDecision()}, &stubRetriever{docs: testDocs()}, gen, answerCache)

	req := &datatypes.QueryRequest{Query: "what does section 302 say", UseCache: true}

	first, err := svc.Process(context.Background(), req)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if first.CacheHit {
		t.Error("first request must be a cache miss")
	}

	second, err := svc.Process(context.Background(), &datatypes.QueryRequest{Query: "what does section 302 say", UseCache: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !second.CacheHit {
		t.Error("second request should be served from cache")
	}
	if second.Answer != first.Answer {
		t.Error("cached answer should match the original")
	}
	if gen.calls != 1 {
		t.Errorf("LLM calls = %d, want 1 (second request cached)", gen.calls)
	}
}

func TestProcess_HallucinationAudit(t *testing.T) {
	// Answer fully supported by the retrieved source.
	gen := &stubLLM{answer: "Whoever commits murder shall be punished with death or imprisonment for life [1]."}
	svc := newTestService(&stubClassifier{decision: generalDecision()}, &stubRetriever{docs: testDocs()}, gen, nil)

	resp, err := svc.Process(context.Background(), &datatypes.QueryRequest{
		Query:                "what is the punishment under section 302",
		DetectHallucinations: true,
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(resp.LevelScores) != 7 {
		t.Errorf("level scores = %d, want 7", len(resp.LevelScores))
	}
	if !resp.IsSafe {
		t.Errorf("supported answer flagged unsafe, score %f", resp.HallucinationScore)
	}
	if resp.RiskLevel == "unknown" {
		t.Error("audit should set a concrete risk level")
	}
	if resp.Confidence != 1.0-resp.HallucinationScore {
		t.Errorf("confidence = %f, want 1 - hallucination score", resp.Confidence)
	}
}

func TestProcess_DefaultsApplied(t *testing.T) {
	svc := newTestService(&stubClassifier{decision: generalDecision()}, &stubRetriever{}, &stubLLM{answer: "ok"}, nil)

	req := &datatypes.QueryRequest{Query: "what is anticipatory bail"}
	if _, err := svc.Process(context.Background(), req); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if req.TopK != datatypes.DefaultTopK {
		t.Errorf("TopK = %d, want default %d", req.TopK, datatypes.DefaultTopK)
	}
}
