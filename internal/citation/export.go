package citation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned by Export for unrecognized format names.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Export formats supported by Export. These are write-only representations
// for downstream consumers; nothing reads them back in.
const (
	ExportJSON   = "json"
	ExportBibTeX = "bibtex"
	ExportCSV    = "csv"
)

// Export renders all sources in the named export format. Unknown formats
// are an invalid-argument error, never a silent fallback.
func (f *Formatter) Export(format string) (string, error) {
	// Capture the revision key before rendering, same as Bibliography: a
	// concurrent mutation must not see old text under its new revision.
	key := f.renderKey("export", format)
	if text, ok := f.lookup(key); ok {
		return text, nil
	}

	var text string
	switch format {
	case ExportJSON:
		data, err := json.MarshalIndent(f.store.Sources(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal sources: %w", err)
		}
		text = string(data)
	case ExportBibTeX:
		text = f.exportBibTeX()
	case ExportCSV:
		text = f.exportCSV()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	f.remember(key, text)
	return text, nil
}

// exportBibTeX renders one multi-line @misc entry per source, keyed by
// citation id, blank-line separated.
func (f *Formatter) exportBibTeX() string {
	var entries []string
	for _, src := range f.store.Sources() {
		var b strings.Builder
		fmt.Fprintf(&b, "@misc{%d,\n", src.CitationID)
		fmt.Fprintf(&b, "  title = {%s},\n", src.Title)
		if src.Author != "" {
			fmt.Fprintf(&b, "  author = {%s},\n", src.Author)
		}
		if src.PublicationDate != nil {
			fmt.Fprintf(&b, "  year = {%d},\n", src.Year())
		}
		if src.Publisher != "" {
			fmt.Fprintf(&b, "  publisher = {%s},\n", src.Publisher)
		}
		fmt.Fprintf(&b, "  url = {%s},\n", src.URL)
		b.WriteString("}\n")
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n")
}

// csvHeader is the fixed 10-column export layout.
var csvHeader = []string{
	"citation_id", "title", "author", "publication_date", "publisher",
	"url", "source_type", "industry", "reliability_score", "authority_score",
}

// exportCSV renders the fixed-column table. Values are comma-joined as-is
// (source metadata from discovery is expected to be plain text); missing
// optionals become empty cells.
func (f *Formatter) exportCSV() string {
	rows := []string{strings.Join(csvHeader, ",")}
	for _, src := range f.store.Sources() {
		date := ""
		if src.PublicationDate != nil {
			date = src.PublicationDate.Format("2006-01-02")
		}
		row := []string{
			strconv.Itoa(src.CitationID),
			src.Title,
			src.Author,
			date,
			src.Publisher,
			src.URL,
			string(src.SourceType),
			src.Industry,
			formatScore(src.Credibility.ReliabilityScore),
			formatScore(src.Credibility.AuthorityScore),
		}
		rows = append(rows, strings.Join(row, ","))
	}
	return strings.Join(rows, "\n")
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
