package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := b.Punishments["murder"]; !ok {
		t.Error("expected built-in murder entry")
	}
	if _, ok := b.Concepts[ConceptDefault]; !ok {
		t.Error("expected built-in default concept entry")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knowledge.yaml")
	overlay := `
punishments:
  murder:
    section: "IPC Section 302 (amended)"
    title: "Punishment for Murder"
    punishment: "Life imprisonment + Fine"
  smuggling:
    section: "Customs Act Section 135"
    title: "Punishment for Smuggling"
    punishment: "Imprisonment up to 7 years"
concepts:
  article_14:
    title: "Article 14 (rewritten)"
    definition: "Equality before law."
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvKnowledgePath, path)

	b, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := b.Punishments["murder"].Section; got != "IPC Section 302 (amended)" {
		t.Errorf("overlay should replace murder entry, section = %q", got)
	}
	if _, ok := b.Punishments["smuggling"]; !ok {
		t.Error("overlay should add new punishment entries")
	}
	if _, ok := b.Punishments["theft"]; !ok {
		t.Error("overlay must not drop built-in entries it does not mention")
	}
	if got := b.Concepts["article_14"].Title; got != "Article 14 (rewritten)" {
		t.Errorf("overlay should replace concept entry, title = %q", got)
	}
}

func TestLoadOverlayBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("punishments: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvKnowledgePath, path)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed overlay file")
	}
}

func TestConceptFallback(t *testing.T) {
	b := MustLoad()
	c := b.Concept("no_such_concept")
	if c.Title != "General Legal Query" {
		t.Errorf("unknown concept should fall back to default, got title %q", c.Title)
	}
	c = b.Concept("habeas_corpus")
	if !strings.Contains(c.Title, "Habeas Corpus") {
		t.Errorf("known concept lookup failed, got title %q", c.Title)
	}
	if b.HasConcept("no_such_concept") {
		t.Error("HasConcept should be false for unknown keys")
	}
	if !b.HasConcept("habeas_corpus") {
		t.Error("HasConcept should be true for curated keys")
	}
}

func TestFormatPunishmentAnswer(t *testing.T) {
	b := MustLoad()

	tests := []struct {
		name      string
		crimeType string
		want      []string
	}{
		{
			name:      "direct punishment entry",
			crimeType: "theft",
			want: []string{
				"LEGAL CONSEQUENCES: PUNISHMENT FOR THEFT",
				"IPC Section 379",
				"BAIL PROVISIONS",
				"Bailable",
				"DISCLAIMER",
				"Police: 100",
			},
		},
		{
			name:      "concept entry routed through concept formatter",
			crimeType: "hacking",
			want: []string{
				"Punishment for Hacking under IT Act",
				"IT Act Section 66",
				"DISCLAIMER",
			},
		},
		{
			name:      "bail-flavored key falls back to bail_general",
			crimeType: "bail_theft",
			want: []string{
				"BAIL PROVISIONS IN INDIA",
				"CrPC Sections 436-439",
			},
		},
		{
			name:      "unknown key falls back to murder",
			crimeType: "zzz_unknown",
			want: []string{
				"LEGAL CONSEQUENCES: PUNISHMENT FOR MURDER",
				"IPC Section 302",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.FormatPunishmentAnswer(tt.crimeType)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("FormatPunishmentAnswer(%q) missing %q", tt.crimeType, w)
				}
			}
		})
	}
}

func TestFormatPunishmentAnswerSections(t *testing.T) {
	b := MustLoad()
	got := b.FormatPunishmentAnswer("murder")

	order := []string{
		"**LEGAL CONSEQUENCES: PUNISHMENT FOR MURDER**",
		"**SECTION**:",
		"**DEFINITION**:",
		"**PUNISHMENT**:",
		"**KEY POINTS**:",
		"**AGGRAVATING FACTORS**",
		"**SUPREME COURT GUIDELINES**:",
		"Bachan Singh",
		"**CONSTITUTIONAL PROTECTION**:",
		"**STATISTICS**:",
		"**DISCLAIMER**:",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("answer missing section marker %q", marker)
		}
		if idx < last {
			t.Errorf("section %q out of order", marker)
		}
		last = idx
	}
}

func TestFormatConceptAnswer(t *testing.T) {
	b := MustLoad()

	got := b.FormatConceptAnswer("article32_vs_226")
	for _, w := range []string{"Article 32 and Article 226", "KEY DIFFERENCES", "Supreme Court", "DISCLAIMER"} {
		if !strings.Contains(got, w) {
			t.Errorf("concept answer missing %q", w)
		}
	}
	if strings.Contains(got, "Police: 100") {
		t.Error("concept answers should not carry the emergency helpline footer")
	}

	got = b.FormatConceptAnswer("fir_filing")
	for _, w := range []string{"WHAT TO DO", "Lalita Kumari", "ZERO FIR"} {
		if !strings.Contains(got, w) {
			t.Errorf("fir_filing answer missing %q", w)
		}
	}
}
