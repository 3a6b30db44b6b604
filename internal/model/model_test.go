package model

import (
	"testing"
	"time"
)

func TestParseSourceType(t *testing.T) {
	if got := ParseSourceType("academic"); got != SourceTypeAcademic {
		t.Errorf("expected academic, got %s", got)
	}
	if got := ParseSourceType("social_media"); got != SourceTypeSocialMedia {
		t.Errorf("expected social_media, got %s", got)
	}
	// Discovery metadata is noisy: unknown types degrade to other
	if got := ParseSourceType("podcast"); got != SourceTypeOther {
		t.Errorf("expected other for unknown type, got %s", got)
	}
	if got := ParseSourceType(""); got != SourceTypeOther {
		t.Errorf("expected other for empty type, got %s", got)
	}
}

func TestParseCitationFormat(t *testing.T) {
	for _, f := range CitationFormats {
		got, err := ParseCitationFormat(string(f))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", f, err)
		}
		if got != f {
			t.Errorf("expected %s, got %s", f, got)
		}
	}

	if _, err := ParseCitationFormat("turabian"); err == nil {
		t.Error("expected error for unknown citation format")
	}
}

func TestDefaultConfig_DomainRuleOrder(t *testing.T) {
	cfg := DefaultConfig()

	wantSuffixes := []string{".edu", ".gov", ".org", ".com", ".net", ".io"}
	if len(cfg.Scoring.DomainRules) != len(wantSuffixes) {
		t.Fatalf("expected %d domain rules, got %d", len(wantSuffixes), len(cfg.Scoring.DomainRules))
	}
	for i, want := range wantSuffixes {
		if cfg.Scoring.DomainRules[i].Suffix != want {
			t.Errorf("rule %d: expected suffix %s, got %s", i, want, cfg.Scoring.DomainRules[i].Suffix)
		}
	}
}

func TestDefaultConfig_IndustryWeights(t *testing.T) {
	cfg := DefaultConfig()

	cases := map[string]float64{
		"academic":   0.9,
		"legal":      0.8,
		"medical":    0.9,
		"government": 0.8,
		"business":   0.7,
		"news":       0.6,
	}
	for industry, want := range cases {
		w, ok := cfg.Scoring.IndustryWeights[industry]
		if !ok {
			t.Errorf("missing industry weight for %s", industry)
			continue
		}
		if w.Reliability != want || w.Authority != want {
			t.Errorf("%s: expected %f/%f, got %f/%f", industry, want, want, w.Reliability, w.Authority)
		}
	}
}

func TestSource_Clone(t *testing.T) {
	pub := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	src := Source{
		URL:             "https://a.com",
		Title:           "A",
		PublicationDate: &pub,
		Keywords:        []string{"one"},
		Metadata:        map[string]interface{}{"k": "v"},
	}

	clone := src.Clone()
	clone.Keywords[0] = "mutated"
	clone.Metadata["k"] = "mutated"
	*clone.PublicationDate = pub.AddDate(1, 0, 0)

	if src.Keywords[0] != "one" {
		t.Errorf("expected original keywords unchanged, got %q", src.Keywords[0])
	}
	if src.Metadata["k"] != "v" {
		t.Errorf("expected original metadata unchanged, got %v", src.Metadata["k"])
	}
	if src.PublicationDate.Year() != 2023 {
		t.Errorf("expected original date unchanged, got %d", src.PublicationDate.Year())
	}
}

func TestSource_Year(t *testing.T) {
	var src Source
	if src.Year() != 0 {
		t.Errorf("expected 0 for dateless source, got %d", src.Year())
	}

	pub := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	src.PublicationDate = &pub
	if src.Year() != 2021 {
		t.Errorf("expected 2021, got %d", src.Year())
	}
}
