// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package safety

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
)

const (
	// maxClaims bounds how many sentences level 1 verifies per answer.
	maxClaims = 15

	// minClaimLength drops sentence fragments from claim extraction.
	minClaimLength = 20

	// claimOverlapThreshold is the word-overlap ratio above which a claim
	// counts as supported by the sources.
	claimOverlapThreshold = 0.4

	// attributionWindow is how far (in bytes) a [n] marker may sit from a
	// legal claim and still count as its citation.
	attributionWindow = 150

	// maxAttributionIssues caps level 5 findings to avoid over-flagging
	// long answers.
	maxAttributionIssues = 10

	// staleSourceYear is the newest source year that still counts as stale.
	// Sources entirely older than this trip the recency check.
	staleSourceYear = 2024
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]`)
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	articleCitation = regexp.MustCompile(`(?i)article\s+(\d+)(?:\((\d+)\))?(?:\(([a-z])\))?`)
	sectionCitation = regexp.MustCompile(`(?i)section\s+(\d+[a-z]*)`)
	caseCitation    = regexp.MustCompile(`(\w+(?:\s+\w+)*)\s+v\.?\s+(\w+(?:\s+\w+)*)\s+\((\d{4})\)`)

	courtEntity = regexp.MustCompile(`(Supreme|High|District)\s+Court(?:\s+of\s+\w+)?`)
	actEntity   = regexp.MustCompile(`(\w+(?:\s+\w+)*?)\s+Act,?\s+(\d{4})`)

	citationMarker = regexp.MustCompile(`\[\d+\]`)

	entityPunct     = regexp.MustCompile(`[^\w\s]`)
	entityStopwords = regexp.MustCompile(`\b(the|of|and|court|act)\b`)
)

// attributionPatterns are legal claims that should carry a nearby [n]
// citation. The label feeds the issue evidence.
var attributionPatterns = []struct {
	pattern *regexp.Regexp
	label   string
}{
	{regexp.MustCompile(`(?i)Section \d+[\w()]*`), "Section reference"},
	{regexp.MustCompile(`(?i)Article \d+[\w()]*`), "Article reference"},
	{regexp.MustCompile(`(?i)(Supreme|High) Court`), "Court reference"},
	{regexp.MustCompile(`(?i)punishment.*?(imprisonment|fine|death)`), "Punishment reference"},
	{regexp.MustCompile(`(?i)\d{4}\s+SCC`), "Case law reference"},
}

// nuancePhrases signal that an answer acknowledges differing views.
var nuancePhrases = []string{
	"however", "but", "on the other hand",
	"contrary to", "different view", "alternatively",
}

// level1FactualConsistency checks that the answer's claims appear in the
// sources. The most important check: it catches fabricated information.
func (d *Detector) level1FactualConsistency(answer string, sources []datatypes.LegalDocument) levelResult {
	var issues []Issue
	claims := extractClaims(answer)
	if len(claims) == 0 {
		return levelResult{name: "factual_consistency", issues: nil, score: 1.0}
	}
	sourceText := joinSourceContent(sources)

	verified := 0
	for _, claim := range claims {
		if claimSupported(claim, sourceText) {
			verified++
			continue
		}
		issues = append(issues, Issue{
			Level:    1,
			Type:     "factual_inconsistency",
			Claim:    claim,
			Severity: "high",
			Evidence: "Claim not found in provided sources",
		})
	}

	score := float64(verified) / float64(len(claims))
	return levelResult{name: "factual_consistency", issues: issues, score: score}
}

// level2CitationAccuracy verifies that cited articles, sections, and cases
// literally appear in the source text. An answer with no citations passes.
func (d *Detector) level2CitationAccuracy(answer string, sources []datatypes.LegalDocument) levelResult {
	var issues []Issue
	citations := extractCitations(answer)
	if len(citations) == 0 {
		return levelResult{name: "legal_citation_accuracy", issues: nil, score: 1.0}
	}

	sourceText := strings.ToLower(joinSourceContent(sources))
	verified := 0
	for _, c := range citations {
		if strings.Contains(sourceText, strings.ToLower(c)) {
			verified++
			continue
		}
		issues = append(issues, Issue{
			Level:    2,
			Type:     "citation_inaccuracy",
			Claim:    c,
			Severity: "high",
			Evidence: "Citation details do not match sources",
		})
	}

	score := float64(verified) / float64(len(citations))
	return levelResult{name: "legal_citation_accuracy", issues: issues, score: score}
}

// level3TemporalConsistency flags years later than the detector's current
// year. Any future year halves the score.
func (d *Detector) level3TemporalConsistency(answer string) levelResult {
	var issues []Issue
	for _, raw := range yearPattern.FindAllString(answer, -1) {
		year, err := strconv.Atoi(raw)
		if err != nil || year <= d.currentYear {
			continue
		}
		issues = append(issues, Issue{
			Level:    3,
			Type:     "temporal_inconsistency",
			Claim:    fmt.Sprintf("Year %d mentioned", year),
			Severity: "high",
			Evidence: fmt.Sprintf("Future year %d referenced (current: %d)", year, d.currentYear),
		})
	}

	score := 1.0
	if len(issues) > 0 {
		score = 0.5
	}
	return levelResult{name: "temporal_consistency", issues: issues, score: score}
}

// level4EntityConsistency flags entities whose surface form drifts through
// the answer, e.g. three different spellings of the same Act.
func (d *Detector) level4EntityConsistency(answer string) levelResult {
	var issues []Issue

	variations := make(map[string]map[string]struct{})
	for _, name := range extractEntities(answer) {
		base := normalizeEntityName(name)
		if variations[base] == nil {
			variations[base] = make(map[string]struct{})
		}
		variations[base][name] = struct{}{}
	}

	bases := make([]string, 0, len(variations))
	for base := range variations {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	for _, base := range bases {
		forms := variations[base]
		// Two surface forms are normal prose variation.
		if len(forms) <= 2 {
			continue
		}
		sample := make([]string, 0, len(forms))
		for form := range forms {
			sample = append(sample, form)
		}
		sort.Strings(sample)
		if len(sample) > 3 {
			sample = sample[:3]
		}
		issues = append(issues, Issue{
			Level:    4,
			Type:     "entity_inconsistency",
			Claim:    fmt.Sprintf("Entity '%s' has multiple forms", base),
			Severity: "medium",
			Evidence: "Forms: " + strings.Join(sample, ", "),
		})
	}

	score := 1.0 - float64(len(issues))*0.1
	if score < 0 {
		score = 0
	}
	return levelResult{name: "entity_consistency", issues: issues, score: score}
}

// level5SourceAttribution checks that legal claims sit near a [n] citation
// marker. The window is attributionWindow bytes on either side.
func (d *Detector) level5SourceAttribution(answer string, sources []datatypes.LegalDocument) levelResult {
	var issues []Issue

	markers := citationMarker.FindAllString(answer, -1)
	totalClaims := 0

	for _, p := range attributionPatterns {
		locs := p.pattern.FindAllStringIndex(answer, -1)
		totalClaims += len(locs)
		for _, loc := range locs {
			start := maxInt(0, loc[0]-attributionWindow)
			end := minInt(len(answer), loc[0]+attributionWindow)
			context := answer[start:end]

			cited := false
			for _, marker := range markers {
				if strings.Contains(context, marker) {
					cited = true
					break
				}
			}
			if cited {
				continue
			}
			issues = append(issues, Issue{
				Level:    5,
				Type:     "missing_attribution",
				Claim:    answer[loc[0]:loc[1]],
				Severity: "medium",
				Evidence: p.label + " without citation",
			})
		}
	}

	if len(issues) > maxAttributionIssues {
		issues = issues[:maxAttributionIssues]
	}

	score := 1.0
	if totalClaims > 0 {
		score = 1.0 - float64(len(issues))/float64(totalClaims)
		if score < 0 {
			score = 0
		}
	}
	return levelResult{name: "source_attribution", issues: issues, score: score}
}

// level6CrossDocumentConsistency checks for cherry-picking: three or more
// sources with no acknowledgment of differing views.
func (d *Detector) level6CrossDocumentConsistency(answer string, sources []datatypes.LegalDocument) levelResult {
	var issues []Issue

	if len(sources) >= 3 {
		lower := strings.ToLower(answer)
		hasNuance := false
		for _, phrase := range nuancePhrases {
			if strings.Contains(lower, phrase) {
				hasNuance = true
				break
			}
		}
		if !hasNuance {
			issues = append(issues, Issue{
				Level:    6,
				Type:     "potential_cherry_picking",
				Claim:    "Multiple sources but no acknowledgment of different views",
				Severity: "low",
				Evidence: "Consider multiple perspectives from sources",
			})
		}
	}

	score := 1.0 - float64(len(issues))*0.15
	if score < 0 {
		score = 0
	}
	return levelResult{name: "cross_document_consistency", issues: issues, score: score}
}

// level7Recency flags answers built entirely from stale sources.
func (d *Detector) level7Recency(answer string, sources []datatypes.LegalDocument) levelResult {
	var issues []Issue

	newest := 0
	for _, s := range sources {
		if s.Year > newest {
			newest = s.Year
		}
	}
	if newest > 0 && newest < staleSourceYear {
		issues = append(issues, Issue{
			Level:    7,
			Type:     "potentially_outdated",
			Claim:    fmt.Sprintf("Using sources from before %d", staleSourceYear),
			Severity: "low",
			Evidence: fmt.Sprintf("Most recent source: %d", newest),
		})
	}

	score := 1.0
	if len(issues) > 0 {
		score = 0.85
	}
	return levelResult{name: "recent_judgments", issues: issues, score: score}
}

// ====== Helpers ======

// extractClaims splits the answer into sentences and keeps substantial ones.
func extractClaims(text string) []string {
	var claims []string
	for _, sentence := range sentenceSplit.Split(text, -1) {
		s := strings.TrimSpace(sentence)
		if len(s) > minClaimLength {
			claims = append(claims, s)
		}
		if len(claims) == maxClaims {
			break
		}
	}
	return claims
}

// claimSupported reports whether enough of the claim's words occur in the
// source text. Cheap lexical proxy for entailment.
func claimSupported(claim, sourceText string) bool {
	claimWords := wordSet(strings.ToLower(claim))
	sourceWords := wordSet(strings.ToLower(sourceText))

	overlap := 0
	for w := range claimWords {
		if _, ok := sourceWords[w]; ok {
			overlap++
		}
	}
	ratio := float64(overlap) / float64(maxInt(len(claimWords), 1))
	return ratio > claimOverlapThreshold
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		set[w] = struct{}{}
	}
	return set
}

// extractCitations pulls article, section, and case references out of the
// answer. Only the literal text is kept: level 2 verifies it against the
// sources verbatim.
func extractCitations(text string) []string {
	var citations []string
	citations = append(citations, articleCitation.FindAllString(text, -1)...)
	citations = append(citations, sectionCitation.FindAllString(text, -1)...)
	citations = append(citations, caseCitation.FindAllString(text, -1)...)
	return citations
}

// extractEntities pulls court and act names out of the answer.
func extractEntities(text string) []string {
	var entities []string
	entities = append(entities, courtEntity.FindAllString(text, -1)...)
	entities = append(entities, actEntity.FindAllString(text, -1)...)
	return entities
}

// normalizeEntityName lowercases, strips punctuation, and drops filler
// words so surface variants of the same entity collapse to one key.
func normalizeEntityName(name string) string {
	normalized := entityPunct.ReplaceAllString(strings.ToLower(name), "")
	normalized = entityStopwords.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}

func joinSourceContent(sources []datatypes.LegalDocument) string {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		parts = append(parts, s.Content)
	}
	return strings.Join(parts, " ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
