package match

import "github.com/xrash/smetrics"

// Scorer rates the similarity of two normalized name keys in [0,1]. Scorers
// only ever run after the fixed strategies: phone-key equality stays the
// unconditional top priority and pool order stays the tie-break.
type Scorer func(a, b string) float64

// JaroWinkler is the default optional scorer.
func JaroWinkler(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}

// ScorerByName resolves a configured scorer name; unknown or empty names
// disable the scoring pass.
func ScorerByName(name string) Scorer {
	switch name {
	case "jaro-winkler":
		return JaroWinkler
	default:
		return nil
	}
}
