package model

import "time"

// DomainRule maps a URL suffix to a credibility score. Rules are checked
// in order and the first substring match wins, so the rule list must stay
// an ordered slice - a map would randomize matching.
type DomainRule struct {
	Suffix string  `yaml:"suffix"`
	Score  float64 `yaml:"score"`
}

// IndustryWeight holds the reliability/authority floor pair for an industry.
type IndustryWeight struct {
	Reliability float64 `yaml:"reliability"`
	Authority   float64 `yaml:"authority"`
}

// ScoringConfig holds the fixed tables and constants of the credibility
// scoring algorithm.
type ScoringConfig struct {
	// Baseline is the score assigned to an unknown source on every axis.
	Baseline float64 `yaml:"baseline"`

	// DecayYears is the source age at which the recency score reaches zero.
	DecayYears float64 `yaml:"decay_years"`

	// VerificationBoost is added to reliability and authority on each
	// verification, capped at 1.0.
	VerificationBoost float64 `yaml:"verification_boost"`

	// DomainRules is the ordered suffix table (first match wins).
	DomainRules []DomainRule `yaml:"domain_rules"`

	// TypeFloors raises reliability and authority for certain source types.
	TypeFloors map[SourceType]float64 `yaml:"type_floors"`

	// IndustryWeights raises reliability and authority per industry.
	IndustryWeights map[string]IndustryWeight `yaml:"industry_weights"`
}

// CacheConfig controls the rendered-output cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// IngestConfig controls concurrent batch registration.
type IngestConfig struct {
	Concurrency int `yaml:"concurrency"`

	// RequestsPerSecond paces registrations per source host; zero disables
	// pacing.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Config is the full deepcite configuration.
type Config struct {
	// Format is the default citation style for the ledger instance.
	Format CitationFormat `yaml:"format"`

	// HighCredibilityThreshold is the default cutoff for the
	// high-credibility query.
	HighCredibilityThreshold float64 `yaml:"high_credibility_threshold"`

	// RecentWindowDays is the default window for the recent-sources query
	// and the recent count in statistics.
	RecentWindowDays int `yaml:"recent_window_days"`

	Scoring ScoringConfig `yaml:"scoring"`
	Cache   CacheConfig   `yaml:"cache"`
	Ingest  IngestConfig  `yaml:"ingest"`
}

// DefaultConfig returns the built-in tables and defaults.
func DefaultConfig() Config {
	return Config{
		Format:                   FormatAPA,
		HighCredibilityThreshold: 0.8,
		RecentWindowDays:         365,
		Scoring: ScoringConfig{
			Baseline:          0.7,
			DecayYears:        10,
			VerificationBoost: 0.1,
			DomainRules: []DomainRule{
				{Suffix: ".edu", Score: 0.9},
				{Suffix: ".gov", Score: 0.9},
				{Suffix: ".org", Score: 0.8},
				{Suffix: ".com", Score: 0.6},
				{Suffix: ".net", Score: 0.6},
				{Suffix: ".io", Score: 0.5},
			},
			TypeFloors: map[SourceType]float64{
				SourceTypeAcademic:   0.9,
				SourceTypeMedical:    0.9,
				SourceTypeGovernment: 0.8,
			},
			IndustryWeights: map[string]IndustryWeight{
				"academic":   {Reliability: 0.9, Authority: 0.9},
				"legal":      {Reliability: 0.8, Authority: 0.8},
				"medical":    {Reliability: 0.9, Authority: 0.9},
				"government": {Reliability: 0.8, Authority: 0.8},
				"business":   {Reliability: 0.7, Authority: 0.7},
				"news":       {Reliability: 0.6, Authority: 0.6},
			},
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			CleanupInterval: 15 * time.Minute,
		},
		Ingest: IngestConfig{
			Concurrency:       4,
			RequestsPerSecond: 0,
			Burst:             5,
		},
	}
}
