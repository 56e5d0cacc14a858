// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package intent

import "regexp"

// Crime type slot values produced by ExtractCrimeType.
const (
	CrimeGeneral     = "general"
	CrimeBailGeneral = "bail_general"
	CrimeMurder      = "murder"
)

// ipcSections maps recognized IPC section numbers to crime types.
var ipcSections = map[string]string{
	"302":  "murder",
	"304":  "culpable_homicide",
	"304b": "dowry_death",
	"307":  "attempt_to_murder",
	"300":  "murder_definition",
	"299":  "culpable_homicide_definition",
	"323":  "assault",
	"324":  "assault",
	"354":  "molestation",
	"363":  "kidnapping",
	"376":  "rape",
	"377":  "unnatural_offenses",
	"379":  "theft",
	"392":  "robbery",
	"420":  "fraud",
	"498":  "cruelty_by_husband",
	"498a": "cruelty_by_husband",
	"499":  "defamation",
	"500":  "defamation",
	"506":  "criminal_intimidation",
	"124a": "sedition",
}

// KnownIPCSection reports whether the section number is in the curated map.
func KnownIPCSection(section string) bool {
	_, ok := ipcSections[section]
	return ok
}

var ipcSectionPattern = regexp.MustCompile(`\b(?:section|ipc)\s*(\d{3})\b`)

// ExtractIPCSection returns the IPC section number named in the query, or
// empty when none of the recognized sections appears. The query must
// already be lowercased.
func ExtractIPCSection(query string) string {
	m := ipcSectionPattern.FindStringSubmatch(query)
	if m == nil {
		return ""
	}
	if _, ok := ipcSections[m[1]]; ok {
		return m[1]
	}
	return ""
}

var bailPattern = regexp.MustCompile(`\b(?:bail|anticipatory bail)\b`)

// bailCrimeRules resolve which crime a bail query is about.
// Order matters - first match wins.
var bailCrimeRules = []struct {
	pattern *regexp.Regexp
	crime   string
}{
	{regexp.MustCompile(`\b(?:theft|steal)\b`), "theft"},
	{regexp.MustCompile(`\b(?:murder|kill)\b`), "murder"},
	{regexp.MustCompile(`\b(?:robbery|rob)\b`), "robbery"},
	{regexp.MustCompile(`\b(?:fraud|cheat)\b`), "fraud"},
	{regexp.MustCompile(`\b(?:rape|sexual)\b`), "rape"},
	{regexp.MustCompile(`\b(?:assault|hurt)\b`), "assault"},
	{regexp.MustCompile(`\b(?:kidnap|abduction)\b`), "kidnapping"},
	{regexp.MustCompile(`\b(?:defamation)\b`), "defamation"},
	{regexp.MustCompile(`\b(?:dowry)\b`), "dowry"},
}

// crimeTypeRules resolve the crime a non-bail query is about.
// Order matters - first match wins, so "murder" outranks "assault" when a
// query mentions both.
var crimeTypeRules = []struct {
	pattern *regexp.Regexp
	crime   string
}{
	{regexp.MustCompile(`\b(?:murder|kill|killing)\b`), "murder"},
	{regexp.MustCompile(`\b(?:rape|sexual assault|molestation)\b`), "rape"},
	{regexp.MustCompile(`\b(?:theft|steal|stealing|stole|stolen|shoplifting|shoplift)\b`), "theft"},
	{regexp.MustCompile(`\b(?:robbery|rob|robbing|loot|robbary)\b`), "robbery"},
	{regexp.MustCompile(`\b(?:fraud|cheat|cheating|scam|online fraud)\b`), "fraud"},
	{regexp.MustCompile(`\b(?:kidnap|kidnapping|abduct|abduction)\b`), "kidnapping"},
	{regexp.MustCompile(`\b(?:cruelty|498a|domestic violence|dv act)\b`), "cruelty_by_husband"},
	{regexp.MustCompile(`\b(?:hacking|hack)\b`), "hacking"},
	{regexp.MustCompile(`\b(?:cyber crime|identity theft|cyber)\b`), "cyber_crime"},
	{regexp.MustCompile(`\b(?:dowry demand|dowry)\b`), "dowry"},
	{regexp.MustCompile(`\b(?:defamation|libel|slander)\b`), "defamation"},
	{regexp.MustCompile(`\b(?:contempt|contempt of court)\b`), "contempt"},
	{regexp.MustCompile(`\b(?:assault|hurt|grievous)\b`), "assault"},
}

// ExtractCrimeType classifies which crime the query concerns. Bail queries
// are resolved first so "bail for theft" yields "theft" rather than letting
// a later pattern win. The query must already be lowercased.
func ExtractCrimeType(query string) string {
	if bailPattern.MatchString(query) {
		for _, rule := range bailCrimeRules {
			if rule.pattern.MatchString(query) {
				return rule.crime
			}
		}
		return CrimeBailGeneral
	}
	for _, rule := range crimeTypeRules {
		if rule.pattern.MatchString(query) {
			return rule.crime
		}
	}
	return CrimeGeneral
}
