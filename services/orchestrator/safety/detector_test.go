// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package safety

import (
	"context"
	"math"
	"testing"

	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
)

func doc(content string, year int) datatypes.LegalDocument {
	return datatypes.LegalDocument{
		DocID:   "doc-1",
		Source:  "Indian Penal Code",
		Content: content,
		Year:    year,
	}
}

func TestLevel1_FactualConsistency(t *testing.T) {
	d := NewDetector()

	sources := []datatypes.LegalDocument{
		doc("The punishment for murder is death or imprisonment for life under section 302.", 2020),
	}

	// Fully supported claim.
	r := d.level1FactualConsistency("The punishment for murder is death or imprisonment for life.", sources)
	if r.score != 1.0 {
		t.Errorf("supported claim: score = %v, want 1.0", r.score)
	}
	if len(r.issues) != 0 {
		t.Errorf("supported claim: issues = %d, want 0", len(r.issues))
	}

	// Fabricated claim with no lexical overlap.
	r = d.level1FactualConsistency("Quantum entanglement enables wireless telepathic communication channels.", sources)
	if r.score != 0.0 {
		t.Errorf("fabricated claim: score = %v, want 0.0", r.score)
	}
	if len(r.issues) != 1 || r.issues[0].Type != "factual_inconsistency" {
		t.Errorf("fabricated claim: issues = %+v", r.issues)
	}

	// Empty answer has no verifiable claims.
	r = d.level1FactualConsistency("", sources)
	if r.score != 0.0 {
		t.Errorf("empty answer: score = %v, want 0.0", r.score)
	}
}

func TestLevel2_CitationAccuracy(t *testing.T) {
	d := NewDetector()

	sources := []datatypes.LegalDocument{
		doc("Article 14 guarantees equality before law. Article 19 protects free speech.", 2020),
	}

	// Citation present in the sources.
	r := d.level2CitationAccuracy("Article 14 applies here.", sources)
	if r.score != 1.0 {
		t.Errorf("good citation: score = %v, want 1.0", r.score)
	}

	// Fabricated citation.
	r = d.level2CitationAccuracy("Article 500 guarantees free speech.", sources)
	if r.score != 0.0 {
		t.Errorf("bad citation: score = %v, want 0.0", r.score)
	}
	if len(r.issues) != 1 || r.issues[0].Type != "citation_inaccuracy" {
		t.Errorf("bad citation: issues = %+v", r.issues)
	}

	// No citations at all passes.
	r = d.level2CitationAccuracy("Equality is a core value.", sources)
	if r.score != 1.0 {
		t.Errorf("no citations: score = %v, want 1.0", r.score)
	}
}

func TestLevel3_TemporalConsistency(t *testing.T) {
	d := NewDetector()

	// Future year is flagged and halves the score.
	r := d.level3TemporalConsistency("The 2030 amendment changed this rule.")
	if r.score != 0.5 {
		t.Errorf("future year: score = %v, want 0.5", r.score)
	}
	if len(r.issues) != 1 || r.issues[0].Type != "temporal_inconsistency" {
		t.Errorf("future year: issues = %+v", r.issues)
	}

	// Past years are fine.
	r = d.level3TemporalConsistency("The Act of 1872 was amended in 2013.")
	if r.score != 1.0 {
		t.Errorf("past years: score = %v, want 1.0", r.score)
	}

	// The injected year moves the boundary.
	future := NewDetector(WithCurrentYear(2031))
	r = future.level3TemporalConsistency("The 2030 amendment changed this rule.")
	if r.score != 1.0 {
		t.Errorf("injected year: score = %v, want 1.0", r.score)
	}
}

func TestLevel4_EntityConsistency(t *testing.T) {
	d := NewDetector()

	// Three surface forms of the same Act.
	answer := "The Evidence Act 1872 applies; the Evidence Act, 1872 is key. The  Evidence Act 1872 again."
	r := d.level4EntityConsistency(answer)
	if len(r.issues) != 1 || r.issues[0].Type != "entity_inconsistency" {
		t.Fatalf("drifting entity: issues = %+v", r.issues)
	}
	if math.Abs(r.score-0.9) > 1e-9 {
		t.Errorf("drifting entity: score = %v, want 0.9", r.score)
	}

	// A consistently named entity passes.
	r = d.level4EntityConsistency("The Supreme Court interpreted the Evidence Act 1872.")
	if r.score != 1.0 {
		t.Errorf("consistent entities: score = %v, want 1.0", r.score)
	}
}

func TestLevel5_SourceAttribution(t *testing.T) {
	d := NewDetector()

	// A legal claim without a citation marker.
	r := d.level5SourceAttribution("Section 302 prescribes the death penalty.", nil)
	if r.score != 0.0 {
		t.Errorf("uncited claim: score = %v, want 0.0", r.score)
	}
	if len(r.issues) != 1 || r.issues[0].Type != "missing_attribution" {
		t.Errorf("uncited claim: issues = %+v", r.issues)
	}

	// The same claim with a nearby marker.
	r = d.level5SourceAttribution("Section 302 prescribes the death penalty [1].", nil)
	if r.score != 1.0 {
		t.Errorf("cited claim: score = %v, want 1.0", r.score)
	}

	// No legal claims at all.
	r = d.level5SourceAttribution("Consult a lawyer for your specific case.", nil)
	if r.score != 1.0 {
		t.Errorf("no claims: score = %v, want 1.0", r.score)
	}
}

func TestLevel6_CrossDocumentConsistency(t *testing.T) {
	d := NewDetector()

	three := []datatypes.LegalDocument{doc("a", 0), doc("b", 0), doc("c", 0)}

	r := d.level6CrossDocumentConsistency("One view only.", three)
	if math.Abs(r.score-0.85) > 1e-9 {
		t.Errorf("no nuance: score = %v, want 0.85", r.score)
	}

	r = d.level6CrossDocumentConsistency("One view; however, another exists.", three)
	if r.score != 1.0 {
		t.Errorf("nuanced: score = %v, want 1.0", r.score)
	}

	// Two sources never trip the check.
	r = d.level6CrossDocumentConsistency("One view only.", three[:2])
	if r.score != 1.0 {
		t.Errorf("two sources: score = %v, want 1.0", r.score)
	}
}

func TestLevel7_Recency(t *testing.T) {
	d := NewDetector()

	r := d.level7Recency("answer", []datatypes.LegalDocument{doc("old", 2010)})
	if math.Abs(r.score-0.85) > 1e-9 {
		t.Errorf("stale sources: score = %v, want 0.85", r.score)
	}
	if len(r.issues) != 1 || r.issues[0].Type != "potentially_outdated" {
		t.Errorf("stale sources: issues = %+v", r.issues)
	}

	r = d.level7Recency("answer", []datatypes.LegalDocument{doc("old", 2010), doc("new", 2025)})
	if r.score != 1.0 {
		t.Errorf("fresh source present: score = %v, want 1.0", r.score)
	}

	// Sources without year metadata are not penalized.
	r = d.level7Recency("answer", []datatypes.LegalDocument{doc("unknown", 0)})
	if r.score != 1.0 {
		t.Errorf("no year metadata: score = %v, want 1.0", r.score)
	}
}

func TestAudit_CleanAnswer(t *testing.T) {
	d := NewDetector()
	ctx := context.Background()

	answer := "The punishment for murder is death or imprisonment for life [1]."
	sources := []datatypes.LegalDocument{
		doc("The punishment for murder is death or imprisonment for life under the Indian Penal Code.", 2025),
	}

	report, err := d.Audit(ctx, answer, sources, "What is the punishment for murder?")
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}
	if report.HallucinationScore != 0.0 {
		t.Errorf("hallucination score = %v, want 0.0", report.HallucinationScore)
	}
	if !report.IsSafe {
		t.Error("clean answer marked unsafe")
	}
	if report.RiskLevel != "very_low" {
		t.Errorf("risk level = %q, want very_low", report.RiskLevel)
	}
	if report.ChecksPassed != 7 {
		t.Errorf("checks passed = %d, want 7", report.ChecksPassed)
	}
	if len(report.LevelScores) != 7 {
		t.Errorf("level scores = %d entries, want 7", len(report.LevelScores))
	}
}

func TestAudit_EmptyAnswer(t *testing.T) {
	d := NewDetector()

	report, err := d.Audit(context.Background(), "", nil, "anything")
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}
	// No extractable claims means nothing to verify. Every level sits at
	// its no-data default and the answer is not penalized.
	if math.Abs(report.HallucinationScore) > 1e-9 {
		t.Errorf("hallucination score = %v, want 0", report.HallucinationScore)
	}
	if !report.IsSafe {
		t.Error("empty answer marked unsafe")
	}
	if report.RiskLevel != "very_low" {
		t.Errorf("risk level = %q, want very_low", report.RiskLevel)
	}
	if report.ChecksPassed != 7 {
		t.Errorf("checks passed = %d, want 7", report.ChecksPassed)
	}
	if got := report.LevelScores["level_1_factual_consistency"]; got != 1.0 {
		t.Errorf("factual consistency with no claims = %v, want 1.0", got)
	}
}

func TestRiskLevelBuckets(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.0, "very_low"},
		{0.019, "very_low"},
		{0.03, "low"},
		{0.07, "medium"},
		{0.15, "high"},
		{0.5, "critical"},
	}
	for _, tt := range tests {
		if got := riskLevel(tt.score); got != tt.expected {
			t.Errorf("riskLevel(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}
