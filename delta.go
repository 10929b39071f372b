package orcas

// Percent is a relative change expressed in percent: 10 means +10%.
type Percent float64

// Delta is the change from a baseline to a scenario value.
type Delta struct {
	Absolute float64 `json:"absolute"`
	Percent  Percent `json:"percent"`
}

// NewDelta computes scenario - baseline and its relative size against the
// baseline. A zero baseline yields a 0% change rather than NaN or Inf.
func NewDelta(baseline, scenario float64) Delta {
	d := Delta{Absolute: scenario - baseline}
	if baseline != 0 {
		d.Percent = Percent(d.Absolute / baseline * 100)
	}
	return d
}

// NewDeltaOf is NewDelta for nullable values; ok is false when either is missing.
func NewDeltaOf(baseline, scenario *float64) (d Delta, ok bool) {
	if !finite(baseline) || !finite(scenario) {
		return Delta{}, false
	}
	return NewDelta(*baseline, *scenario), true
}

// AverageSeries returns, for every period, the arithmetic mean of the values
// available across all series. Series may have different lengths. A period
// where no series has a value averages to nil, not 0.
func AverageSeries(series [][]*float64) []*float64 {
	n := 0
	for _, s := range series {
		n = max(n, len(s))
	}
	avg := make([]*float64, n)
	for i := range avg {
		var sum float64
		var count int
		for _, s := range series {
			if i < len(s) && finite(s[i]) {
				sum += *s[i]
				count++
			}
		}
		if count > 0 {
			mean := sum / float64(count)
			avg[i] = &mean
		}
	}
	return avg
}

// Span returns the first and last available values of a series.
func Span(series []*float64) (first, last *float64) {
	for _, v := range series {
		if !finite(v) {
			continue
		}
		if first == nil {
			first = v
		}
		last = v
	}
	return first, last
}

// Summary counts classified metrics the way the historical view does.
type Summary struct {
	Improved int `json:"improved"`
	Declined int `json:"declined"`
	Stable   int `json:"stable"`
	NA       int `json:"na"`
}

// Summarize counts "up" as improved and "down" as declined.
func Summarize(results []TrendResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Trend {
		case TrendUp:
			s.Improved++
		case TrendDown:
			s.Declined++
		case TrendStable:
			s.Stable++
		default:
			s.NA++
		}
	}
	return s
}
