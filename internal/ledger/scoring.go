package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"
	"time"

	"github.com/qx-labs/deepcite/internal/model"
)

// scoreCredibility is the deterministic scoring pass run once per
// registration. All three axes start at the baseline and are only ever
// raised by floors, so every score stays in [0, 1].
func (l *Ledger) scoreCredibility(rawURL string, published *time.Time, sourceType model.SourceType, industry string) model.SourceCredibility {
	sc := l.cfg.Scoring

	reliability := sc.Baseline
	recency := sc.Baseline
	authority := sc.Baseline

	// Linear recency decay: zero credibility once the source is DecayYears
	// old. Sources without a date keep the baseline rather than being
	// penalized for missing metadata.
	if published != nil {
		yearsOld := l.now().Sub(*published).Hours() / 24 / 365
		recency = capScore(math.Max(0, 1-yearsOld/sc.DecayYears))
	}

	// Ordered suffix scan, first match wins. Checked as a plain substring
	// of the lowercased URL, so ".edu" anywhere in the URL counts.
	lowered := strings.ToLower(rawURL)
	for _, rule := range sc.DomainRules {
		if strings.Contains(lowered, rule.Suffix) {
			reliability = math.Max(reliability, rule.Score)
			authority = math.Max(authority, rule.Score)
			break
		}
	}

	if floor, ok := sc.TypeFloors[sourceType]; ok {
		reliability = math.Max(reliability, floor)
		authority = math.Max(authority, floor)
	}

	if industry != "" {
		if w, ok := sc.IndustryWeights[industry]; ok {
			reliability = math.Max(reliability, w.Reliability)
			authority = math.Max(authority, w.Authority)
		}
	}

	return model.SourceCredibility{
		ReliabilityScore:   reliability,
		RecencyScore:       recency,
		AuthorityScore:     authority,
		OverallScore:       (reliability + recency + authority) / 3,
		VerificationStatus: model.StatusUnverified,
	}
}

func capScore(v float64) float64 {
	return math.Min(1.0, v)
}

// ContentHash fingerprints a source for external content-identity checks.
// The ledger itself never consults it: re-adding the same URL produces a
// new, independent entry.
func ContentHash(url, title, author string) string {
	sum := sha256.Sum256([]byte(url + title + author))
	return hex.EncodeToString(sum[:])
}
