// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package knowledge

import (
	"strings"
)

const (
	disclaimerLine = "⚖️ **DISCLAIMER**: This is for educational purposes only. Consult a qualified lawyer for legal advice."
	helplineLine   = "🚨 **If you or someone you know is in danger, contact Police: 100 | Women's Helpline: 1091**"
)

// FormatPunishmentAnswer renders a curated educational answer for the given
// crime type. Lookup order: punishment entry, then concept entry, then the
// bail_general entry for any bail-flavored key, then murder as the final
// fallback so the caller always gets a complete answer.
func (b *Base) FormatPunishmentAnswer(crimeType string) string {
	if e, ok := b.Punishments[crimeType]; ok {
		return formatPunishment(e)
	}
	if _, ok := b.Concepts[crimeType]; ok {
		return b.FormatConceptAnswer(crimeType)
	}
	if strings.Contains(crimeType, "bail") {
		if e, ok := b.Punishments[CrimeBailGeneral]; ok {
			return formatPunishment(e)
		}
	}
	return formatPunishment(b.Punishments[CrimeMurder])
}

// FormatConceptAnswer renders a curated answer for a legal concept key,
// falling back to the default entry for unknown keys.
func (b *Base) FormatConceptAnswer(key string) string {
	c := b.Concept(key)

	var sb strings.Builder
	sb.WriteString("📚 **" + c.Title + "**\n\n")
	if c.Definition != "" {
		sb.WriteString("📖 **DEFINITION**:\n" + c.Definition + "\n\n")
	}
	if c.Section != "" {
		sb.WriteString("📋 **LEGAL PROVISION**: " + c.Section + "\n\n")
	}
	writeBullets(&sb, "🔑 **KEY DIFFERENCES**:", c.KeyDifferences)
	writeBullets(&sb, "🔑 **KEY ELEMENTS**:", c.KeyElements)
	writeBullets(&sb, "🔑 **KEY POINTS**:", c.KeyPoints)
	writeBullets(&sb, "✊ **YOUR RIGHTS**:", c.Rights)
	writeLines(&sb, "📝 **WHAT TO DO**:", c.Steps)
	writeLines(&sb, "📝 **PROCEDURE**:", c.ProcedureOverview)
	if c.Restrictions != "" {
		sb.WriteString("⚠️ **RESTRICTIONS**: " + c.Restrictions + "\n\n")
	}
	if c.Scope != "" {
		sb.WriteString("🔍 **SCOPE**: " + c.Scope + "\n\n")
	}
	if c.LandmarkCase != "" {
		sb.WriteString("🏛️ **LANDMARK CASE**: " + c.LandmarkCase + "\n\n")
	}
	if c.Note != "" {
		sb.WriteString("💡 **NOTE**: " + c.Note + "\n\n")
	}
	sb.WriteString(disclaimerLine)
	return sb.String()
}

func formatPunishment(e PunishmentEntry) string {
	var sb strings.Builder
	sb.WriteString("📚 **LEGAL CONSEQUENCES: " + strings.ToUpper(e.Title) + "**\n\n")
	if e.Section != "" {
		sb.WriteString("📋 **SECTION**: " + e.Section + "\n\n")
	}
	if e.Definition != "" {
		sb.WriteString("📖 **DEFINITION**:\n" + e.Definition + "\n\n")
	}
	if e.Punishment != "" {
		sb.WriteString("⚖️ **PUNISHMENT**:\n" + e.Punishment + "\n\n")
	}
	writeBullets(&sb, "🔑 **KEY POINTS**:", e.KeyPoints)

	if e.Bail != nil {
		sb.WriteString("🔒 **BAIL PROVISIONS**:\n")
		sb.WriteString("• Type: " + e.Bail.Type + "\n")
		if e.Bail.Explanation != "" {
			sb.WriteString("• " + e.Bail.Explanation + "\n")
		}
		for _, c := range e.Bail.Conditions {
			sb.WriteString("  - " + c + "\n")
		}
		if e.Bail.Amount != "" {
			sb.WriteString("• Typical amount: " + e.Bail.Amount + "\n")
		}
		sb.WriteString("\n")
	}

	writeBullets(&sb, "⚠️ **AGGRAVATING FACTORS** (may increase punishment):", e.AggravatingFactors)

	if g := e.Guidelines; g != nil {
		sb.WriteString("🏛️ **SUPREME COURT GUIDELINES**:\n")
		if g.Case != "" {
			sb.WriteString("• Case: " + g.Case + "\n")
		}
		if g.Principle != "" {
			sb.WriteString("• Principle: " + g.Principle + "\n")
		}
		if g.Test != "" {
			sb.WriteString("• Test: " + g.Test + "\n")
		}
		sb.WriteString("\n")
	}

	writeBullets(&sb, "🔗 **RELATED SECTIONS**:", e.RelatedSections)

	sb.WriteString("🛡️ **CONSTITUTIONAL PROTECTION**:\n")
	sb.WriteString("• Article 21: Right to life and personal liberty - fair trial guaranteed\n")
	sb.WriteString("• Article 20: Protection against double jeopardy and self-incrimination\n\n")

	if e.ConvictionRate != "" || e.AverageSentence != "" {
		sb.WriteString("📊 **STATISTICS**:\n")
		if e.ConvictionRate != "" {
			sb.WriteString("• Conviction rate: " + e.ConvictionRate + "\n")
		}
		if e.AverageSentence != "" {
			sb.WriteString("• Average sentence: " + e.AverageSentence + "\n")
		}
		sb.WriteString("\n")
	}

	writeBullets(&sb, "💡 **EXAMPLES**:", e.Examples)

	sb.WriteString(disclaimerLine + "\n\n")
	sb.WriteString(helplineLine)
	return sb.String()
}

// ====== Helpers ======

func writeBullets(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	for _, it := range items {
		sb.WriteString("• " + it + "\n")
	}
	sb.WriteString("\n")
}

func writeLines(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	for _, it := range items {
		sb.WriteString(it + "\n")
	}
	sb.WriteString("\n")
}
