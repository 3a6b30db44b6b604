package citation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/qx-labs/deepcite/internal/ledger"
	"github.com/qx-labs/deepcite/internal/model"
)

func exportLedger() *ledger.Ledger {
	led := ledger.New(model.DefaultConfig())
	pub := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	led.AddSource(model.SourceInput{
		URL:             "https://example.edu/paper",
		Title:           "Deep Research Methods",
		Author:          "Smith, J.",
		PublicationDate: &pub,
		Publisher:       "Example Press",
		SourceType:      model.SourceTypeAcademic,
		Industry:        "academic",
	})
	led.AddSource(model.SourceInput{
		URL:   "https://example.com/memo",
		Title: "Untitled Memo",
	})
	return led
}

func TestExport_JSON(t *testing.T) {
	f := NewFormatter(exportLedger(), model.FormatAPA)

	text, err := f.Export(ExportJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var dump []map[string]interface{}
	if err := json.Unmarshal([]byte(text), &dump); err != nil {
		t.Fatalf("expected valid JSON, got error: %v", err)
	}
	if len(dump) != 2 {
		t.Fatalf("expected 2 exported sources, got %d", len(dump))
	}
	if dump[0]["citation_id"].(float64) != 1 {
		t.Errorf("expected first entry to be citation 1, got %v", dump[0]["citation_id"])
	}
	if _, ok := dump[0]["publication_date"].(string); !ok {
		t.Errorf("expected publication date serialized as a string, got %T", dump[0]["publication_date"])
	}
	if !strings.Contains(text, "\n  ") {
		t.Error("expected indented JSON output")
	}
}

func TestExport_BibTeX(t *testing.T) {
	f := NewFormatter(exportLedger(), model.FormatAPA)

	text, err := f.Export(ExportBibTeX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFirst := "@misc{1,\n" +
		"  title = {Deep Research Methods},\n" +
		"  author = {Smith, J.},\n" +
		"  year = {2023},\n" +
		"  publisher = {Example Press},\n" +
		"  url = {https://example.edu/paper},\n" +
		"}\n"
	if !strings.HasPrefix(text, wantFirst) {
		t.Errorf("unexpected first entry:\n%s", text)
	}

	// Entries are blank-line separated; the dateless memo omits optionals
	if !strings.Contains(text, "}\n\n@misc{2,") {
		t.Error("expected blank line between entries")
	}
	if !strings.Contains(text, "@misc{2,\n  title = {Untitled Memo},\n  url") {
		t.Errorf("expected second entry without author/year/publisher:\n%s", text)
	}
}

func TestExport_CSV(t *testing.T) {
	f := NewFormatter(exportLedger(), model.FormatAPA)

	text, err := f.Export(ExportCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := strings.Split(text, "\n")
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(rows))
	}

	wantHeader := "citation_id,title,author,publication_date,publisher,url,source_type,industry,reliability_score,authority_score"
	if rows[0] != wantHeader {
		t.Errorf("unexpected header: %q", rows[0])
	}
	if rows[1] != "1,Deep Research Methods,Smith, J.,2023-05-01,Example Press,https://example.edu/paper,academic,academic,0.9,0.9" {
		t.Errorf("unexpected first row: %q", rows[1])
	}
	// Missing optionals become empty cells
	if rows[2] != "2,Untitled Memo,,,,https://example.com/memo,other,,0.7,0.7" {
		t.Errorf("unexpected second row: %q", rows[2])
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	led := exportLedger()
	f := NewFormatter(led, model.FormatAPA)
	sizeBefore := led.Len()

	_, err := f.Export("xml")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if led.Len() != sizeBefore {
		t.Errorf("expected ledger unchanged after failed export, got size %d", led.Len())
	}
}
