// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// LegalDocument is a retrieved corpus document as it flows through the
// pipeline: retrieval produces it, generation cites it, the answer audit
// verifies against it.
type LegalDocument struct {
	DocID   string  `json:"doc_id"`
	Source  string  `json:"source"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	DocType string  `json:"doc_type"`
	Year    int     `json:"year"`
	Score   float64 `json:"score"`
}

// Preview returns at most n bytes of content with an ellipsis marker.
// Truncation is byte-based on purpose: previews feed JSON responses where
// size matters more than grapheme alignment.
func (d LegalDocument) Preview(n int) string {
	if len(d.Content) <= n {
		return d.Content
	}
	return d.Content[:n] + "..."
}
