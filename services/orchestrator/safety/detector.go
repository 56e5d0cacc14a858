// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package safety audits generated answers for hallucinations.
//
// The auditor runs seven independent checks over an answer and the source
// documents it was generated from:
//
//  1. Factual consistency    - are the answer's claims present in the sources
//  2. Citation accuracy      - do cited articles/sections/cases appear in the sources
//  3. Temporal consistency   - no future years
//  4. Entity consistency     - no drifting entity names
//  5. Source attribution     - legal claims carry [n] citations nearby
//  6. Cross-document use     - multiple sources acknowledged with nuance
//  7. Recency                - sources are not stale
//
// The seven scores average into a hallucination score (1 - mean) which maps
// to a risk bucket. Answers under 10% hallucination are considered safe.
package safety

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SafeThreshold is the hallucination score below which an answer is safe.
const SafeThreshold = 0.10

// Issue is a single finding from one audit level.
type Issue struct {
	Level    int    `json:"level"`
	Type     string `json:"type"`
	Claim    string `json:"claim"`
	Severity string `json:"severity"`
	Evidence string `json:"evidence"`
}

// Report is the aggregated verdict over all seven levels.
type Report struct {
	HallucinationScore float64            `json:"hallucination_score"`
	IsSafe             bool               `json:"is_safe"`
	RiskLevel          string             `json:"risk_level"`
	LevelScores        map[string]float64 `json:"level_scores"`
	Issues             []Issue            `json:"issues_found"`
	TotalIssues        int                `json:"total_issues"`
	ChecksPassed       int                `json:"checks_passed"`
}

// levelResult is the output of one audit level.
type levelResult struct {
	name   string
	issues []Issue
	score  float64
}

// Auditor runs the seven-level answer audit.
//
// Thread Safety: Implementations must be safe for concurrent use.
type Auditor interface {
	// Audit checks the answer against its sources and returns a Report.
	//
	// Description:
	//   Runs all seven levels concurrently and aggregates their scores.
	//   The audit is purely lexical: no LLM call, no network. It is cheap
	//   enough to run on every answer when the caller asks for it.
	//
	// Inputs:
	//   ctx - Context for tracing and cancellation. Must not be nil.
	//   answer - The generated answer text. May be empty.
	//   sources - The documents the answer was generated from. May be empty,
	//     in which case every claim counts as unverified.
	//   query - The original user query. Reserved for future checks.
	//
	// Outputs:
	//   *Report - The aggregated verdict. Never nil on nil error.
	//   error - Context cancellation only; the checks themselves cannot fail.
	//
	// Thread Safety: This method is safe for concurrent use.
	Audit(ctx context.Context, answer string, sources []datatypes.LegalDocument, query string) (*Report, error)
}

// Detector is the lexical implementation of Auditor.
//
// Thread Safety: This type is safe for concurrent use after construction.
type Detector struct {
	currentYear int
}

// Option configures a Detector.
type Option func(*Detector)

// WithCurrentYear overrides the year used by the temporal check. Tests pin
// it so answers mentioning this year's judgments do not flake at new year.
func WithCurrentYear(year int) Option {
	return func(d *Detector) {
		d.currentYear = year
	}
}

// NewDetector creates a Detector. The temporal check defaults to the 2026
// knowledge-base year unless WithCurrentYear overrides it.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{currentYear: 2026}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Audit implements the Auditor interface.
func (d *Detector) Audit(ctx context.Context, answer string, sources []datatypes.LegalDocument, query string) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := otel.Tracer("nyaya.orchestrator.safety").Start(ctx, "safety.Detector.Audit",
		trace.WithAttributes(
			attribute.Int("answer_length", len(answer)),
			attribute.Int("source_count", len(sources)),
		),
	)
	defer span.End()

	checks := []func() levelResult{
		func() levelResult { return d.level1FactualConsistency(answer, sources) },
		func() levelResult { return d.level2CitationAccuracy(answer, sources) },
		func() levelResult { return d.level3TemporalConsistency(answer) },
		func() levelResult { return d.level4EntityConsistency(answer) },
		func() levelResult { return d.level5SourceAttribution(answer, sources) },
		func() levelResult { return d.level6CrossDocumentConsistency(answer, sources) },
		func() levelResult { return d.level7Recency(answer, sources) },
	}

	results := make([]levelResult, len(checks))
	g, _ := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := aggregate(results)
	span.SetAttributes(
		attribute.Float64("safety.hallucination_score", report.HallucinationScore),
		attribute.String("safety.risk_level", report.RiskLevel),
		attribute.Int("safety.total_issues", report.TotalIssues),
	)
	return report, nil
}

// aggregate folds the seven level results into a Report. Level keys are
// numbered so API clients can rely on stable names.
func aggregate(results []levelResult) *Report {
	levelScores := make(map[string]float64, len(results))
	var issues []Issue
	var sum float64
	passed := 0

	for i, r := range results {
		key := levelKey(i+1, r.name)
		levelScores[key] = r.score
		issues = append(issues, r.issues...)
		sum += r.score
		if r.score > 0.85 {
			passed++
		}
	}

	hallucination := 1.0 - sum/float64(len(results))
	return &Report{
		HallucinationScore: hallucination,
		IsSafe:             hallucination < SafeThreshold,
		RiskLevel:          riskLevel(hallucination),
		LevelScores:        levelScores,
		Issues:             issues,
		TotalIssues:        len(issues),
		ChecksPassed:       passed,
	}
}

func levelKey(n int, name string) string {
	return "level_" + strconv.Itoa(n) + "_" + name
}

// riskLevel maps a hallucination score to its bucket.
func riskLevel(score float64) string {
	switch {
	case score < 0.02:
		return "very_low"
	case score < 0.05:
		return "low"
	case score < 0.10:
		return "medium"
	case score < 0.20:
		return "high"
	default:
		return "critical"
	}
}

// Ensure Detector implements Auditor.
var _ Auditor = (*Detector)(nil)
