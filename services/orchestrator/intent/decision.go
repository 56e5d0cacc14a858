// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package intent classifies legal queries before retrieval and generation.
//
// The classifier distinguishes three kinds of traffic:
//   - Educational queries about legal consequences (allow, answer from the
//     curated punishment knowledge base)
//   - Pure violence or criminal planning (block, never reaches the LLM)
//   - General legal queries (normal retrieval-augmented processing)
package intent

// Category identifies the routing bucket a query falls into.
type Category string

const (
	// CategoryPunishmentEducation marks queries seeking legal consequences
	// of a crime. These are answered from curated IPC knowledge.
	CategoryPunishmentEducation Category = "PUNISHMENT_EDUCATION"

	// CategoryPureViolence marks criminal-planning queries. These are
	// blocked before any retrieval or generation happens.
	CategoryPureViolence Category = "PURE_VIOLENCE"

	// CategoryGeneralLegal marks everything else. These flow through the
	// normal RAG pipeline, optionally steered by a concept key.
	CategoryGeneralLegal Category = "GENERAL_LEGAL"
)

// BlockDirective carries the user-facing refusal for a blocked query.
type BlockDirective struct {
	Message string `json:"message"`
}

// EducationDirective carries the slots extracted from a punishment query.
// IPCSection is empty when the query named no recognized section.
type EducationDirective struct {
	IPCSection string `json:"ipc_section,omitempty"`
	CrimeType  string `json:"crime_type"`
}

// ConceptDirective steers retrieval toward a curated legal concept.
type ConceptDirective struct {
	Key string `json:"key"`
}

// Decision is the classifier verdict for a single query.
//
// Exactly one of the directive pointers is populated for the blocking and
// education categories. Block is non-nil if and only if Category is
// CategoryPureViolence. Education is non-nil if and only if Category is
// CategoryPunishmentEducation. Concept is optionally set for
// CategoryGeneralLegal when a curated concept matched; a nil Concept on a
// general query means plain retrieval.
type Decision struct {
	Category   Category            `json:"category"`
	Safe       bool                `json:"safe"`
	Reason     string              `json:"reason"`
	Confidence float64             `json:"confidence"`
	Block      *BlockDirective     `json:"block,omitempty"`
	Education  *EducationDirective `json:"education,omitempty"`
	Concept    *ConceptDirective   `json:"concept,omitempty"`
}

// ConceptKey returns the concept key or empty when none was matched.
func (d Decision) ConceptKey() string {
	if d.Concept == nil {
		return ""
	}
	return d.Concept.Key
}
