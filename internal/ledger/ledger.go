package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/qx-labs/deepcite/internal/model"
)

// Ledger owns the registry of discovered sources. It assigns monotonically
// increasing citation ids starting at 1, scores credibility on registration
// and answers read-only queries. Writes and reads are safe for use from a
// concurrent host: AddSource and VerifySource take the write lock, queries
// take the read lock.
type Ledger struct {
	mu       sync.RWMutex
	sources  map[int]model.Source
	nextID   int
	revision int64
	cfg      model.Config

	// now is overridable in tests for deterministic recency scoring
	now func() time.Time
}

// New creates an empty ledger. Each unset scoring field falls back to its
// built-in default independently, so a partially populated config (say, a
// custom baseline with no decay window) still scores safely.
func New(cfg model.Config) *Ledger {
	def := model.DefaultConfig().Scoring
	if cfg.Scoring.Baseline == 0 {
		cfg.Scoring.Baseline = def.Baseline
	}
	if cfg.Scoring.DecayYears <= 0 {
		cfg.Scoring.DecayYears = def.DecayYears
	}
	if cfg.Scoring.VerificationBoost == 0 {
		cfg.Scoring.VerificationBoost = def.VerificationBoost
	}
	if len(cfg.Scoring.DomainRules) == 0 {
		cfg.Scoring.DomainRules = def.DomainRules
	}
	if cfg.Scoring.TypeFloors == nil {
		cfg.Scoring.TypeFloors = def.TypeFloors
	}
	if cfg.Scoring.IndustryWeights == nil {
		cfg.Scoring.IndustryWeights = def.IndustryWeights
	}
	if cfg.Format == "" {
		cfg.Format = model.FormatAPA
	}
	if cfg.RecentWindowDays <= 0 {
		cfg.RecentWindowDays = 365
	}
	return &Ledger{
		sources: make(map[int]model.Source),
		nextID:  1,
		cfg:     cfg,
		now:     time.Now,
	}
}

// DefaultFormat returns the citation style configured for this ledger.
func (l *Ledger) DefaultFormat() model.CitationFormat {
	return l.cfg.Format
}

// AddSource scores and registers a discovered source, returning its fresh
// citation id. There are no error conditions: malformed URLs are accepted
// as-is and repeated URLs create distinct entries with distinct ids - the
// ledger never dedupes (the content hash exists for external identity
// checks only).
func (l *Ledger) AddSource(in model.SourceInput) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	sourceType := in.SourceType
	if sourceType == "" {
		sourceType = model.SourceTypeOther
	}
	keywords := in.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	id := l.nextID
	l.sources[id] = model.Source{
		URL:             in.URL,
		Title:           in.Title,
		Author:          in.Author,
		PublicationDate: in.PublicationDate,
		Publisher:       in.Publisher,
		Credibility:     l.scoreCredibility(in.URL, in.PublicationDate, sourceType, in.Industry),
		CitationID:      id,
		SourceType:      sourceType,
		Industry:        in.Industry,
		Keywords:        keywords,
		Metadata:        metadata,
		ContentHash:     ContentHash(in.URL, in.Title, in.Author),
	}
	l.nextID++
	l.revision++
	return id
}

// VerifySource marks a source as reviewed and nudges its credibility
// upward: reliability and authority gain the configured boost (capped at
// 1.0) and the overall score is recomputed. An unknown id is silently
// ignored - verification is best-effort.
//
// Verification is deliberately not idempotent: each call records a fresh
// timestamp and applies the boost again, so repeated review keeps
// accumulating confidence.
func (l *Ledger) VerifySource(citationID int, notes string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.sources[citationID]
	if !ok {
		return
	}

	boost := l.cfg.Scoring.VerificationBoost
	now := l.now()
	src.Credibility.VerificationStatus = model.StatusVerified
	src.Credibility.VerificationDate = &now
	src.Credibility.VerificationNotes = notes
	src.Credibility.ReliabilityScore = capScore(src.Credibility.ReliabilityScore + boost)
	src.Credibility.AuthorityScore = capScore(src.Credibility.AuthorityScore + boost)
	src.Credibility.OverallScore = (src.Credibility.ReliabilityScore +
		src.Credibility.RecencyScore +
		src.Credibility.AuthorityScore) / 3

	l.sources[citationID] = src
	l.revision++
}

// Source returns the source for a citation id, if registered.
func (l *Ledger) Source(citationID int) (model.Source, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	src, ok := l.sources[citationID]
	if !ok {
		return model.Source{}, false
	}
	return src.Clone(), true
}

// Sources returns every registered source in ascending citation-id order.
func (l *Ledger) Sources() []model.Source {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collect(func(model.Source) bool { return true })
}

// Len returns the number of registered sources.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sources)
}

// Revision is bumped by every mutation. Render caches key on it so stale
// output ages out instead of being served after a change.
func (l *Ledger) Revision() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.revision
}

// SourcesByIndustry returns all sources whose industry matches exactly.
func (l *Ledger) SourcesByIndustry(industry string) []model.Source {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collect(func(s model.Source) bool { return s.Industry == industry })
}

// SourcesByType returns all sources of the given type.
func (l *Ledger) SourcesByType(sourceType model.SourceType) []model.Source {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collect(func(s model.Source) bool { return s.SourceType == sourceType })
}

// HighCredibilitySources returns sources whose overall score is at least
// threshold. A non-positive threshold falls back to the configured default.
func (l *Ledger) HighCredibilitySources(threshold float64) []model.Source {
	if threshold <= 0 {
		threshold = l.cfg.HighCredibilityThreshold
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collect(func(s model.Source) bool {
		return s.Credibility.OverallScore >= threshold
	})
}

// RecentSources returns sources published within the last days. Sources
// without a publication date are excluded. A non-positive window falls
// back to the configured default.
func (l *Ledger) RecentSources(days int) []model.Source {
	if days <= 0 {
		days = l.cfg.RecentWindowDays
	}
	cutoff := l.now().AddDate(0, 0, -days)
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collect(func(s model.Source) bool {
		return s.PublicationDate != nil && !s.PublicationDate.Before(cutoff)
	})
}

// Statistics summarizes the ledger. An empty ledger yields zero counts,
// empty maps and a 0.0 average without dividing by zero.
func (l *Ledger) Statistics() model.SourceStatistics {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := model.SourceStatistics{
		SourcesByType:     make(map[model.SourceType]int),
		SourcesByIndustry: make(map[string]int),
	}
	stats.TotalSources = len(l.sources)
	if stats.TotalSources == 0 {
		return stats
	}

	cutoff := l.now().AddDate(0, 0, -l.cfg.RecentWindowDays)
	totalCredibility := 0.0
	for _, src := range l.sources {
		stats.SourcesByType[src.SourceType]++
		if src.Industry != "" {
			stats.SourcesByIndustry[src.Industry]++
		}
		totalCredibility += src.Credibility.OverallScore
		if src.Credibility.VerificationStatus == model.StatusVerified {
			stats.VerifiedSources++
		}
		if src.PublicationDate != nil && !src.PublicationDate.Before(cutoff) {
			stats.RecentSources++
		}
	}
	stats.AverageCredibility = totalCredibility / float64(stats.TotalSources)
	return stats
}

// collect filters and clones sources in ascending citation-id order.
// Callers must hold at least the read lock.
func (l *Ledger) collect(keep func(model.Source) bool) []model.Source {
	out := make([]model.Source, 0, len(l.sources))
	for _, src := range l.sources {
		if keep(src) {
			out = append(out, src.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CitationID < out[j].CitationID })
	return out
}
