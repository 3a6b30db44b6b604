package model

import "time"

// SourceType categorizes where a discovered source comes from
type SourceType string

const (
	SourceTypeAcademic    SourceType = "academic"
	SourceTypeLegal       SourceType = "legal"
	SourceTypeMedical     SourceType = "medical"
	SourceTypeGovernment  SourceType = "government"
	SourceTypeBusiness    SourceType = "business"
	SourceTypeNews        SourceType = "news"
	SourceTypeWebsite     SourceType = "website"
	SourceTypeSocialMedia SourceType = "social_media"
	SourceTypeOther       SourceType = "other"
)

// ParseSourceType converts a string to a SourceType.
// Unknown values map to SourceTypeOther - discovery metadata is noisy
// and a misspelled type must not reject the source.
func ParseSourceType(s string) SourceType {
	switch SourceType(s) {
	case SourceTypeAcademic, SourceTypeLegal, SourceTypeMedical,
		SourceTypeGovernment, SourceTypeBusiness, SourceTypeNews,
		SourceTypeWebsite, SourceTypeSocialMedia, SourceTypeOther:
		return SourceType(s)
	default:
		return SourceTypeOther
	}
}

// VerificationStatus values for SourceCredibility
const (
	StatusUnverified = "unverified"
	StatusVerified   = "verified"
)

// SourceCredibility holds the credibility metrics for a single source.
// Overall is a stored snapshot: the mean of the three component scores at
// the time they were last mutated. It is never recomputed on read.
type SourceCredibility struct {
	ReliabilityScore   float64    `json:"reliability_score"`
	RecencyScore       float64    `json:"recency_score"`
	AuthorityScore     float64    `json:"authority_score"`
	OverallScore       float64    `json:"overall_score"`
	VerificationStatus string     `json:"verification_status"`
	VerificationDate   *time.Time `json:"verification_date,omitempty"`
	VerificationNotes  string     `json:"verification_notes,omitempty"`
}

// Source is a tracked reference, keyed by its citation id.
// URL and Title are required; everything else is optional metadata from
// the discovery process.
type Source struct {
	URL             string                 `json:"url"`
	Title           string                 `json:"title"`
	Author          string                 `json:"author,omitempty"`
	PublicationDate *time.Time             `json:"publication_date"`
	Publisher       string                 `json:"publisher,omitempty"`
	Credibility     SourceCredibility      `json:"credibility"`
	CitationID      int                    `json:"citation_id"`
	SourceType      SourceType             `json:"source_type"`
	Industry        string                 `json:"industry,omitempty"`
	Keywords        []string               `json:"keywords"`
	Metadata        map[string]interface{} `json:"metadata"`
	ContentHash     string                 `json:"content_hash"`
}

// Year returns the publication year, or 0 if no date is known.
func (s *Source) Year() int {
	if s.PublicationDate == nil {
		return 0
	}
	return s.PublicationDate.Year()
}

// Clone returns a copy whose keywords and metadata do not alias the
// original, so query results cannot mutate ledger state.
func (s Source) Clone() Source {
	out := s
	if s.Keywords != nil {
		out.Keywords = make([]string, len(s.Keywords))
		copy(out.Keywords, s.Keywords)
	}
	if s.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(s.Metadata))
		for k, v := range s.Metadata {
			out.Metadata[k] = v
		}
	}
	if s.PublicationDate != nil {
		d := *s.PublicationDate
		out.PublicationDate = &d
	}
	if s.Credibility.VerificationDate != nil {
		d := *s.Credibility.VerificationDate
		out.Credibility.VerificationDate = &d
	}
	return out
}

// SourceInput carries the metadata the discovery collaborator hands over
// when registering a source. Only URL and Title are required.
type SourceInput struct {
	URL             string                 `yaml:"url" json:"url"`
	Title           string                 `yaml:"title" json:"title"`
	Author          string                 `yaml:"author,omitempty" json:"author,omitempty"`
	PublicationDate *time.Time             `yaml:"-" json:"publication_date,omitempty"`
	Publisher       string                 `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	SourceType      SourceType             `yaml:"source_type,omitempty" json:"source_type,omitempty"`
	Industry        string                 `yaml:"industry,omitempty" json:"industry,omitempty"`
	Keywords        []string               `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Metadata        map[string]interface{} `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}
