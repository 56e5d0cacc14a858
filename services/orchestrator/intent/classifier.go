// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package intent

import (
	"context"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BlockMessageViolence is returned for criminal-planning queries.
const BlockMessageViolence = "❌ This system cannot provide assistance with criminal planning. " +
	"Article 21 of the Indian Constitution protects the right to life."

// BlockMessageRephrase is returned for bare violent statements that carry
// no educational framing.
const BlockMessageRephrase = "❌ This appears to suggest violence. If you're asking about legal " +
	"consequences, please rephrase as 'What is the punishment for murder?'"

// Classifier routes a legal query into a category before retrieval.
//
// Thread Safety: Implementations must be safe for concurrent use.
type Classifier interface {
	// Classify analyzes the query text and returns a routing decision.
	//
	// Description:
	//   Runs an ordered rule cascade over the lowercased query. Earlier
	//   stages win: educational comparison queries are recognized before
	//   the violence screen so that "murder vs culpable homicide" is never
	//   blocked, and practical scenarios are recognized before punishment
	//   patterns so that "killed in self defense" routes to the private
	//   defense concept instead of the murder punishment table.
	//
	// Inputs:
	//   ctx - Context for tracing and cancellation. Must not be nil.
	//   query - The user's question text. Matching is case-insensitive.
	//
	// Outputs:
	//   Decision - The routing verdict. Never zero-valued: the final
	//   fallback is a general legal decision with confidence 0.85.
	//
	// Example:
	//   d := classifier.Classify(ctx, "What is the punishment for murder?")
	//   // d.Category == CategoryPunishmentEducation
	//   // d.Education.CrimeType == "murder"
	//
	// Thread Safety: This method is safe for concurrent use.
	Classify(ctx context.Context, query string) Decision
}

// comparisonOverrideRules recognize educational comparison questions about
// homicide. They run before the violence screen so comparison phrasing that
// mentions killing is never blocked.
var comparisonOverrideRules = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:murder|homicide|culpable).*(?:differences?|comparison|vs|versus|distinguish|distinction)\b`),
	regexp.MustCompile(`\b(?:differences?|comparison|vs|versus|distinguish|distinction).*(?:murder|homicide|culpable)\b`),
}

// scenarioOverrideRules route situational questions straight to a curated
// concept. Order matters - first match wins. Self defense must come before
// the punishment patterns or "kill in self defense" lands on the murder
// punishment table.
var scenarioOverrideRules = []struct {
	pattern    *regexp.Regexp
	conceptKey string
	confidence float64
}{
	{regexp.MustCompile(`\b(?:self.?defen[cs]e|private defen[cs]e|kill.*self.?defen|self.?defen.*kill|defen.*myself|attack.*me|someone attack)`), "private_defense", 0.95},
	{regexp.MustCompile(`\b(?:false fir|fake fir|wrong fir|fir against me|false case|wrongly accus|falsely accus)`), "false_fir_remedies", 0.95},
	{regexp.MustCompile(`\b(?:domestic violen|dv act|wife beat|husband beat|marital violen|protection.*violen|violen.*home)`), "domestic_violence", 0.95},
	{regexp.MustCompile(`\b(?:bail.*murder|murder.*bail|get bail.*murder)\b`), "bail_in_murder", 0.9},
	{regexp.MustCompile(`\b(?:cheats me|cheated me|someone cheat|money cheat|fraud.*money|cheat.*money)\b`), "cheating_remedies", 0.9},
	{regexp.MustCompile(`\b(?:drunk driv|drunken driv|drive.*drunk|driving.*drunk|drink and drive|punishment.*drunk)\b`), "drunk_driving", 0.9},
	// No trailing \b - allows "bounces", "bounced".
	{regexp.MustCompile(`\b(?:cheque.*bounces?|check.*bounces?|bounces?.*cheque|dishon.*cheque)`), "cheque_bounce", 0.9},
	{regexp.MustCompile(`\b(?:online.*defam|defam.*online|cyber.*defam|internet.*defam|case.*defam|file.*defam)`), "online_defamation", 0.9},
	{regexp.MustCompile(`\b(?:how long.*trial|trial.*take|duration.*trial|criminal trial.*time|long.*criminal trial)\b`), "trial_duration", 0.9},
	{regexp.MustCompile(`\b(?:if.*threaten|being threaten|someone threaten|what to do.*threat|do.*threaten|what.*if.*threaten)`), "threat_remedies", 0.9},
}

// violencePatterns flag criminal planning. A match blocks the query.
var violencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:how to|best way to|method to|technique to)\s+(?:kill|murder|harm)`),
	regexp.MustCompile(`\b(?:without getting caught|escape punishment|avoid detection|hide body)\b`),
	regexp.MustCompile(`\b(?:weapon|poison|knife).*?(?:kill|murder)\b`),
	regexp.MustCompile(`\b(?:plan|plotting|conspire).*?(?:murder|kill)\b`),
}

// punishmentPatterns recognize educational queries about legal consequences.
var punishmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:what happens if|what will happen if|what is punishment for|what is penalty for)\s+`),
	regexp.MustCompile(`\b(?:punishment|penalty|consequence|jail|prison|sentence|law)\s+(?:for|if)`),
	regexp.MustCompile(`\b(?:ipc|section|penal code)\s+(?:302|304|307|300|299|376|377|379|392|420|498a?|124a|499|500|323|324|354|363|506)\b`),
	regexp.MustCompile(`\b(?:kill|murder|homicide).*?(?:punishment|penalty|consequence|jail|prison|law)\b`),
	regexp.MustCompile(`\b(?:steal|theft|rob|robbery|shoplifting).*?(?:punishment|penalty|consequence|jail|prison|law|bail)\b`),
	regexp.MustCompile(`\b(?:rape|sexual assault).*?(?:punishment|penalty|consequence|jail|prison|law)\b`),
	regexp.MustCompile(`\b(?:fraud|cheat|cheating|scam).*?(?:punishment|penalty|consequence|jail|prison|law|bail)\b`),
	regexp.MustCompile(`\b(?:what if|what happens).*?(?:fraud|cheat|scam)\b`),
	regexp.MustCompile(`\b(?:commit|do|make).*?(?:fraud|cheat|scam)\b`),
	regexp.MustCompile(`\b(?:what if|what happens).*?(?:robbery|rob|robbary|loot)\b`),
	regexp.MustCompile(`\b(?:commit|do|make).*?(?:robbery|rob|robbary|loot)\b`),
	regexp.MustCompile(`\b(?:bail|anticipatory bail|regular bail).*?(?:theft|robbery|murder|rape|fraud)\b`),
	regexp.MustCompile(`\b(?:can i get|will i get|am i eligible for).*?(?:bail)\b`),
	regexp.MustCompile(`\b(?:legal consequences|criminal liability|court punishment)\b`),
	// Generic "punishment for X".
	regexp.MustCompile(`\b(?:punishment for|penalty for)\s+\w+\b`),
	regexp.MustCompile(`\b(?:ipc section)\s+\d{3}\b`),
	regexp.MustCompile(`\bsection\s+\d{3}\s+(?:ipc|punishment|penalty)\b`),
	regexp.MustCompile(`\b(?:498a|cruelty by husband|domestic violence)\b`),
	regexp.MustCompile(`\b(?:defenses?|defence|elements?|ingredients?)\s+(?:for|of|available)?\s*(?:ipc|section)\s*\d{3}\b`),
	// Any "ipc 323" etc.
	regexp.MustCompile(`\bipc\s+\d{3}\b`),
	regexp.MustCompile(`\b(?:what|how|explain|describe|tell).*?(?:murder|theft|robbery|fraud|rape|assault|kidnapping|defamation|hacking)\b`),
	regexp.MustCompile(`\b(?:murder|theft|robbery|fraud|rape|assault|kidnapping|defamation|hacking)\s+(?:case|offense|offence|crime|procedure)\b`),
	regexp.MustCompile(`\b(?:investigation|evidence|elements|defenses?|defence).*?(?:murder|theft|robbery|fraud|rape|assault|kidnapping|defamation|hacking)\b`),
	regexp.MustCompile(`\b(?:murder|theft|robbery|fraud|rape|assault|kidnapping|defamation|hacking).*?(?:investigation|evidence|elements|defenses?|defence)\b`),
	regexp.MustCompile(`\b(?:conviction|convicted|acquittal|file case|filing case).*?(?:murder|theft|robbery|fraud|rape|assault|kidnapping|defamation|hacking)\b`),
	regexp.MustCompile(`\b(?:murder|theft|robbery|fraud|rape|assault|kidnapping|defamation|hacking|dowry).*?(?:bailable|cognizable|court|trial)\b`),
	// Comparison phrasing that the override rules did not already catch.
	regexp.MustCompile(`\b(?:difference|compare|vs|versus|distinguish|comparison).*?(?:murder|homicide|culpable)\b`),
	regexp.MustCompile(`\b(?:murder|homicide|culpable).*?(?:difference|compare|vs|versus|distinction)\b`),
	regexp.MustCompile(`\b(?:how long|time|duration).*?(?:trial|case|appeal|court)\b`),
	regexp.MustCompile(`\b(?:what is|explain).*?(?:review|revision|appeal)\b`),
}

// ambiguousViolencePattern matches "kill <name>" style statements whose
// routing depends on whether the query also asks about consequences.
var ambiguousViolencePattern = regexp.MustCompile(`\b(?:kill|murder)\s+[a-z]+`)

// consequenceWords turn an ambiguous violent statement into an educational
// query when any of them appears anywhere in the text.
var consequenceWords = []string{"what", "happen", "punishment", "consequence", "law"}

// RegexIntentClassifier implements Classifier with an ordered rule cascade.
//
// Thread Safety: This type is safe for concurrent use after construction.
type RegexIntentClassifier struct{}

// NewRegexIntentClassifier creates the rule-based classifier. All patterns
// are package-level and compiled at init, so construction is free.
func NewRegexIntentClassifier() *RegexIntentClassifier {
	return &RegexIntentClassifier{}
}

// Classify implements the Classifier interface.
func (c *RegexIntentClassifier) Classify(ctx context.Context, query string) Decision {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := otel.Tracer("nyaya.orchestrator.intent").Start(ctx, "intent.RegexIntentClassifier.Classify",
		trace.WithAttributes(
			attribute.Int("query_length", len(query)),
		),
	)
	defer span.End()

	q := strings.ToLower(query)

	// Step 0: educational comparison queries, before the violence screen.
	for _, re := range comparisonOverrideRules {
		if re.MatchString(q) {
			span.SetAttributes(attribute.String("intent.category", string(CategoryGeneralLegal)),
				attribute.String("intent.concept", "murder_vs_homicide"))
			return Decision{
				Category:   CategoryGeneralLegal,
				Safe:       true,
				Reason:     "Educational comparison query",
				Confidence: 0.95,
				Concept:    &ConceptDirective{Key: "murder_vs_homicide"},
			}
		}
	}

	// Step 0.5: practical scenarios, before punishment education.
	for _, rule := range scenarioOverrideRules {
		if rule.pattern.MatchString(q) {
			span.SetAttributes(attribute.String("intent.category", string(CategoryGeneralLegal)),
				attribute.String("intent.concept", rule.conceptKey))
			return Decision{
				Category:   CategoryGeneralLegal,
				Safe:       true,
				Reason:     "Practical scenario",
				Confidence: rule.confidence,
				Concept:    &ConceptDirective{Key: rule.conceptKey},
			}
		}
	}

	// Step 1: pure violence / criminal planning.
	for _, re := range violencePatterns {
		if re.MatchString(q) {
			span.SetAttributes(attribute.String("intent.category", string(CategoryPureViolence)))
			return Decision{
				Category:   CategoryPureViolence,
				Safe:       false,
				Reason:     "Cannot assist with criminal planning or violence",
				Confidence: 0.99,
				Block:      &BlockDirective{Message: BlockMessageViolence},
			}
		}
	}

	// Step 2: educational punishment queries.
	for _, re := range punishmentPatterns {
		if re.MatchString(q) {
			section := ExtractIPCSection(q)
			crimeType := ExtractCrimeType(q)
			// A recognized section resolves an otherwise generic crime type.
			if section != "" && crimeType == CrimeGeneral {
				if resolved, ok := ipcSections[section]; ok {
					crimeType = resolved
				}
			}
			span.SetAttributes(attribute.String("intent.category", string(CategoryPunishmentEducation)),
				attribute.String("intent.ipc_section", section),
				attribute.String("intent.crime_type", crimeType))
			return Decision{
				Category:   CategoryPunishmentEducation,
				Safe:       true,
				Reason:     "Educational query about legal consequences",
				Confidence: 0.95,
				Education:  &EducationDirective{IPCSection: section, CrimeType: crimeType},
			}
		}
	}

	// Step 3: "kill <name>" statements. Consequence framing makes them
	// educational, otherwise they are blocked with a rephrase hint.
	if ambiguousViolencePattern.MatchString(q) {
		for _, word := range consequenceWords {
			if strings.Contains(q, word) {
				span.SetAttributes(attribute.String("intent.category", string(CategoryPunishmentEducation)),
					attribute.String("intent.crime_type", CrimeMurder))
				return Decision{
					Category:   CategoryPunishmentEducation,
					Safe:       true,
					Reason:     "Query about legal consequences of violence",
					Confidence: 0.90,
					Education:  &EducationDirective{CrimeType: CrimeMurder},
				}
			}
		}
		span.SetAttributes(attribute.String("intent.category", string(CategoryPureViolence)))
		return Decision{
			Category:   CategoryPureViolence,
			Safe:       false,
			Reason:     "Statement suggesting violence without educational context",
			Confidence: 0.85,
			Block:      &BlockDirective{Message: BlockMessageRephrase},
		}
	}

	// Step 4: general legal concepts.
	if key := ExtractLegalConcept(q); key != "" {
		span.SetAttributes(attribute.String("intent.category", string(CategoryGeneralLegal)),
			attribute.String("intent.concept", key))
		return Decision{
			Category:   CategoryGeneralLegal,
			Safe:       true,
			Reason:     "General legal information query",
			Confidence: 0.90,
			Concept:    &ConceptDirective{Key: key},
		}
	}

	// Step 5: fallback.
	span.SetAttributes(attribute.String("intent.category", string(CategoryGeneralLegal)))
	return Decision{
		Category:   CategoryGeneralLegal,
		Safe:       true,
		Reason:     "General legal information query",
		Confidence: 0.85,
	}
}

// Ensure RegexIntentClassifier implements Classifier.
var _ Classifier = (*RegexIntentClassifier)(nil)
