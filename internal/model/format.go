package model

import "fmt"

// CitationFormat selects a citation rendering style
type CitationFormat string

const (
	FormatAPA       CitationFormat = "apa"
	FormatMLA       CitationFormat = "mla"
	FormatChicago   CitationFormat = "chicago"
	FormatHarvard   CitationFormat = "harvard"
	FormatBibTeX    CitationFormat = "bibtex"
	FormatIEEE      CitationFormat = "ieee"
	FormatVancouver CitationFormat = "vancouver"
)

// CitationFormats lists every supported style.
var CitationFormats = []CitationFormat{
	FormatAPA,
	FormatMLA,
	FormatChicago,
	FormatHarvard,
	FormatBibTeX,
	FormatIEEE,
	FormatVancouver,
}

// ParseCitationFormat converts a string to a CitationFormat.
// Unlike source types, an unknown style is a caller error: there is no
// sensible fallback rendering.
func ParseCitationFormat(s string) (CitationFormat, error) {
	for _, f := range CitationFormats {
		if CitationFormat(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown citation format: %q", s)
}
