package orcas

import (
	"encoding/json"
	"math"
)

const (
	// SignificanceThreshold is the relative change, against the first value,
	// from which a change is flagged as significant.
	SignificanceThreshold = 0.20
	// stableEpsilon is the absolute change under which two values are equal.
	stableEpsilon = 1e-9
)

// Trend is the qualitative direction of a change.
type Trend string

const (
	TrendNA     Trend = "n/a"
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// ParseTrend reads a backend trend string. Unknown values are TrendNA.
func ParseTrend(s string) Trend {
	switch t := Trend(s); t {
	case TrendUp, TrendDown, TrendStable:
		return t
	default:
		return TrendNA
	}
}

// Label is the financial wording shown to users.
func (t Trend) Label() string {
	switch t {
	case TrendUp:
		return "Bullish"
	case TrendDown:
		return "Bearish"
	case TrendStable:
		return "Sideways"
	default:
		return Missing
	}
}

// ComparisonRecord is one metric observed twice: (year1, year2) in historical
// comparisons or (baseline, simulated) in simulations.
type ComparisonRecord struct {
	MetricName string
	MetricType MetricType
	A, B       *float64
}

// TrendResult is the classification of a ComparisonRecord.
type TrendResult struct {
	Trend         Trend `json:"trend"`
	IsSignificant bool  `json:"is_significant"`
}

func (r TrendResult) String() string {
	b, _ := json.Marshal(r)
	return string(b)
}

// Classify derives the trend of a record from its values and polarity.
//
// For a benefit metric an increase is "up"; for a cost metric a decrease is
// "up" (favorable). Without a known polarity the raw direction is used. A
// change is significant when it reaches SignificanceThreshold relative to A;
// it never is when A is zero. Missing values classify as "n/a".
func Classify(rec ComparisonRecord) TrendResult {
	if !finite(rec.A) || !finite(rec.B) {
		return TrendResult{Trend: TrendNA}
	}
	a, b := *rec.A, *rec.B
	delta := b - a

	var res TrendResult
	switch {
	case math.Abs(delta) < stableEpsilon:
		res.Trend = TrendStable
	case rec.MetricType == Cost:
		res.Trend = direction(delta < 0)
	default:
		// Benefit, and the directionless fallback for unknown polarity.
		res.Trend = direction(delta > 0)
	}
	res.IsSignificant = a != 0 && math.Abs(delta/a) >= SignificanceThreshold
	return res
}

func direction(up bool) Trend {
	if up {
		return TrendUp
	}
	return TrendDown
}
