package model

// SourceStatistics summarizes the state of a citation ledger.
// All maps are non-nil even when the ledger is empty.
type SourceStatistics struct {
	TotalSources       int                `json:"total_sources" yaml:"total_sources"`
	SourcesByType      map[SourceType]int `json:"sources_by_type" yaml:"sources_by_type"`
	SourcesByIndustry  map[string]int     `json:"sources_by_industry" yaml:"sources_by_industry"`
	AverageCredibility float64            `json:"average_credibility" yaml:"average_credibility"`
	VerifiedSources    int                `json:"verified_sources" yaml:"verified_sources"`
	RecentSources      int                `json:"recent_sources" yaml:"recent_sources"`
}
