// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package knowledge holds the curated Indian criminal law reference data
// used for educational answers: IPC punishment records keyed by crime type
// and legal concept records keyed by concept slug. The built-in dataset can
// be extended or overridden at startup with a YAML file.
package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvKnowledgePath names an optional YAML overlay file. Entries in the
// overlay are merged over the built-in dataset by key.
const EnvKnowledgePath = "NYAYA_KNOWLEDGE_PATH"

// BailProvisions describes how bail works for a given offense.
type BailProvisions struct {
	Type        string   `yaml:"type"`
	Explanation string   `yaml:"explanation,omitempty"`
	Conditions  []string `yaml:"conditions,omitempty"`
	Amount      string   `yaml:"amount,omitempty"`
}

// CourtGuideline captures a controlling Supreme Court precedent.
type CourtGuideline struct {
	Case      string `yaml:"case"`
	Principle string `yaml:"principle"`
	Test      string `yaml:"test,omitempty"`
}

// PunishmentEntry is the curated record for one IPC offense.
type PunishmentEntry struct {
	Section            string          `yaml:"section"`
	Title              string          `yaml:"title"`
	Definition         string          `yaml:"definition"`
	Punishment         string          `yaml:"punishment"`
	KeyPoints          []string        `yaml:"key_points,omitempty"`
	AggravatingFactors []string        `yaml:"aggravating_factors,omitempty"`
	Guidelines         *CourtGuideline `yaml:"supreme_court_guidelines,omitempty"`
	Bail               *BailProvisions `yaml:"bail_provisions,omitempty"`
	RelatedSections    []string        `yaml:"related_sections,omitempty"`
	ConvictionRate     string          `yaml:"conviction_rate,omitempty"`
	AverageSentence    string          `yaml:"average_sentence,omitempty"`
	Examples           []string        `yaml:"examples,omitempty"`
}

// ConceptEntry is the curated record for one legal concept, article,
// procedure, or landmark case.
type ConceptEntry struct {
	Title             string   `yaml:"title"`
	Definition        string   `yaml:"definition"`
	Section           string   `yaml:"section,omitempty"`
	KeyDifferences    []string `yaml:"key_differences,omitempty"`
	KeyElements       []string `yaml:"key_elements,omitempty"`
	KeyPoints         []string `yaml:"key_points,omitempty"`
	Rights            []string `yaml:"rights,omitempty"`
	Steps             []string `yaml:"steps,omitempty"`
	ProcedureOverview []string `yaml:"procedure_overview,omitempty"`
	Restrictions      string   `yaml:"restrictions,omitempty"`
	Scope             string   `yaml:"scope,omitempty"`
	LandmarkCase      string   `yaml:"landmark_case,omitempty"`
	Note              string   `yaml:"note,omitempty"`
}

// Base is the loaded knowledge base.
//
// Thread Safety: a Base is immutable after Load and safe for concurrent
// readers.
type Base struct {
	Punishments map[string]PunishmentEntry `yaml:"punishments"`
	Concepts    map[string]ConceptEntry    `yaml:"concepts"`
}

// Load returns the built-in dataset, merged with the YAML overlay named by
// NYAYA_KNOWLEDGE_PATH when that variable is set.
func Load() (*Base, error) {
	base := defaultBase()

	path := os.Getenv(EnvKnowledgePath)
	if path == "" {
		return base, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("knowledge overlay %s: %w", path, err)
	}
	var overlay Base
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("knowledge overlay %s: %w", path, err)
	}
	base.merge(&overlay)
	return base, nil
}

// MustLoad is Load for callers that treat a broken overlay as fatal.
func MustLoad() *Base {
	base, err := Load()
	if err != nil {
		panic(err)
	}
	return base
}

func defaultBase() *Base {
	punishments := make(map[string]PunishmentEntry, len(defaultPunishments))
	for k, v := range defaultPunishments {
		punishments[k] = v
	}
	concepts := make(map[string]ConceptEntry, len(defaultConcepts))
	for k, v := range defaultConcepts {
		concepts[k] = v
	}
	return &Base{Punishments: punishments, Concepts: concepts}
}

func (b *Base) merge(overlay *Base) {
	for k, v := range overlay.Punishments {
		b.Punishments[k] = v
	}
	for k, v := range overlay.Concepts {
		b.Concepts[k] = v
	}
}

// Punishment looks up the record for a crime type.
func (b *Base) Punishment(crimeType string) (PunishmentEntry, bool) {
	e, ok := b.Punishments[crimeType]
	return e, ok
}

// Concept looks up the record for a concept key, falling back to the
// generic record when the key is unknown. Use HasConcept to distinguish
// a real match from the fallback.
func (b *Base) Concept(key string) ConceptEntry {
	if e, ok := b.Concepts[key]; ok {
		return e
	}
	return b.Concepts[ConceptDefault]
}

// HasConcept reports whether a curated record exists for the key.
func (b *Base) HasConcept(key string) bool {
	_, ok := b.Concepts[key]
	return ok
}
