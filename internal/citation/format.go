package citation

import (
	"fmt"
	"strings"

	"github.com/qx-labs/deepcite/internal/cache"
	"github.com/qx-labs/deepcite/internal/model"
)

// SourceStore is the read surface the formatter needs from the ledger.
type SourceStore interface {
	Source(citationID int) (model.Source, bool)
	Sources() []model.Source
	Revision() int64
}

// Formatter renders citations, bibliographies and exports from a source
// store. It keeps no state of its own beyond the configured default style
// and an optional render cache.
type Formatter struct {
	store         SourceStore
	defaultFormat model.CitationFormat
	cache         *cache.RenderCache
}

// NewFormatter creates a formatter over the given store. An empty default
// format falls back to APA.
func NewFormatter(store SourceStore, defaultFormat model.CitationFormat) *Formatter {
	if defaultFormat == "" {
		defaultFormat = model.FormatAPA
	}
	return &Formatter{store: store, defaultFormat: defaultFormat}
}

// UseCache enables caching of rendered bibliographies and exports. Entries
// are keyed by store revision, so mutations never serve stale text.
func (f *Formatter) UseCache(c *cache.RenderCache) {
	f.cache = c
}

// FormatCitation renders one citation in the given style (or the default
// when format is empty). An unknown citation id degrades to the bracketed
// id placeholder so report text never breaks on a dangling reference.
func (f *Formatter) FormatCitation(citationID int, format model.CitationFormat) string {
	src, ok := f.store.Source(citationID)
	if !ok {
		return fmt.Sprintf("[%d]", citationID)
	}
	if format == "" {
		format = f.defaultFormat
	}
	return Render(src, format)
}

// Bibliography renders every source as a "[id] citation" line, ascending
// by citation id, newline-joined.
func (f *Formatter) Bibliography(format model.CitationFormat) string {
	if format == "" {
		format = f.defaultFormat
	}

	// The revision must be captured before the source snapshot: a writer
	// landing mid-render then files the old text under the superseded key,
	// which is never read again, instead of poisoning the new revision.
	key := f.renderKey("bibliography", string(format))
	if text, ok := f.lookup(key); ok {
		return text
	}

	var lines []string
	for _, src := range f.store.Sources() {
		lines = append(lines, fmt.Sprintf("[%d] %s", src.CitationID, Render(src, format)))
	}
	text := strings.Join(lines, "\n")
	f.remember(key, text)
	return text
}

// CredibilitySummary produces a human-readable block with the source count
// and the four average scores.
func (f *Formatter) CredibilitySummary() string {
	sources := f.store.Sources()
	if len(sources) == 0 {
		return "No sources available."
	}

	var reliability, recency, authority, overall float64
	for _, src := range sources {
		reliability += src.Credibility.ReliabilityScore
		recency += src.Credibility.RecencyScore
		authority += src.Credibility.AuthorityScore
		overall += src.Credibility.OverallScore
	}
	n := float64(len(sources))

	return fmt.Sprintf(`Source Credibility Summary:
Total Sources: %d
Average Reliability Score: %.2f
Average Recency Score: %.2f
Average Authority Score: %.2f
Overall Average Score: %.2f`,
		len(sources), reliability/n, recency/n, authority/n, overall/n)
}

// renderKey builds the cache key for one rendering operation at the
// store's current revision, or "" when caching is disabled.
func (f *Formatter) renderKey(op, format string) string {
	if f.cache == nil {
		return ""
	}
	return cache.Key(f.store.Revision(), op, format)
}

func (f *Formatter) lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	return f.cache.Get(key)
}

func (f *Formatter) remember(key, text string) {
	if key == "" {
		return
	}
	f.cache.Set(key, text)
}

// Render formats a single source in the given style. Absent optional
// fields are omitted rather than rendered as empty placeholders.
func Render(src model.Source, format model.CitationFormat) string {
	switch format {
	case model.FormatAPA, model.FormatHarvard, model.FormatIEEE, model.FormatVancouver:
		return renderAuthorYearFirst(src)
	case model.FormatMLA:
		return renderYearLast(src, true)
	case model.FormatChicago:
		return renderYearLast(src, false)
	case model.FormatBibTeX:
		return renderBibTeXInline(src)
	default:
		return fmt.Sprintf("[%d]", src.CitationID)
	}
}

// renderAuthorYearFirst covers the APA/Harvard/IEEE/Vancouver field order:
// author, (year), title, publisher.
func renderAuthorYearFirst(src model.Source) string {
	var parts []string
	if src.Author != "" {
		parts = append(parts, src.Author)
	}
	if src.PublicationDate != nil {
		parts = append(parts, fmt.Sprintf("(%d)", src.Year()))
	}
	parts = append(parts, src.Title)
	if src.Publisher != "" {
		parts = append(parts, src.Publisher)
	}
	return strings.Join(parts, ", ")
}

// renderYearLast covers MLA (quoted title) and Chicago (plain title):
// author, title, publisher, year.
func renderYearLast(src model.Source, quoteTitle bool) string {
	var parts []string
	if src.Author != "" {
		parts = append(parts, src.Author)
	}
	if quoteTitle {
		// Plain wrapping quotes: titles are rendered as-is, embedded
		// quote characters included, not Go-escaped.
		parts = append(parts, `"`+src.Title+`"`)
	} else {
		parts = append(parts, src.Title)
	}
	if src.Publisher != "" {
		parts = append(parts, src.Publisher)
	}
	if src.PublicationDate != nil {
		parts = append(parts, fmt.Sprintf("%d", src.Year()))
	}
	return strings.Join(parts, ", ")
}

func renderBibTeXInline(src model.Source) string {
	var parts []string
	if src.Author != "" {
		parts = append(parts, fmt.Sprintf("author = {%s}", src.Author))
	}
	if src.PublicationDate != nil {
		parts = append(parts, fmt.Sprintf("year = {%d}", src.Year()))
	}
	parts = append(parts, fmt.Sprintf("title = {%s}", src.Title))
	if src.Publisher != "" {
		parts = append(parts, fmt.Sprintf("publisher = {%s}", src.Publisher))
	}
	parts = append(parts, fmt.Sprintf("url = {%s}", src.URL))
	return "@misc{" + strings.Join(parts, ", ") + "}"
}
