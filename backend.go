package orcas

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// MetricRow is one metric of a backend historical comparison.
// Trend and IsSignificant are optional: when present they are the backend's
// own classification.
type MetricRow struct {
	MetricName    string     `json:"metric_name"`
	MetricKey     string     `json:"metric_key,omitempty"`
	Section       string     `json:"section"`
	MetricType    MetricType `json:"metric_type"`
	ValueYear1    *float64   `json:"value_year1"`
	ValueYear2    *float64   `json:"value_year2"`
	Delta         *float64   `json:"delta,omitempty"`
	PctChange     *float64   `json:"pct_change,omitempty"`
	Trend         *string    `json:"trend,omitempty"`
	IsSignificant *bool      `json:"is_significant,omitempty"`
}

// Record returns the row as a (year1, year2) comparison.
func (r MetricRow) Record() ComparisonRecord {
	return ComparisonRecord{MetricName: r.MetricName, MetricType: r.MetricType, A: r.ValueYear1, B: r.ValueYear2}
}

// Backend returns the classification carried by the row, if any.
func (r MetricRow) Backend() (TrendResult, bool) {
	if r.Trend == nil {
		return TrendResult{}, false
	}
	res := TrendResult{Trend: ParseTrend(*r.Trend)}
	if r.IsSignificant != nil {
		res.IsSignificant = *r.IsSignificant
	}
	return res, true
}

// HistoricalResponse compares one ticker between two years.
type HistoricalResponse struct {
	Ticker  string      `json:"ticker"`
	Name    string      `json:"name"`
	Year1   int         `json:"year1"`
	Year2   int         `json:"year2"`
	Metrics []MetricRow `json:"metrics"`
	Summary *Summary    `json:"summary,omitempty"`
}

// AdjustmentDetail is one overridden metric of a simulation.
type AdjustmentDetail struct {
	MetricKey         string     `json:"metric_key,omitempty"`
	MetricName        string     `json:"metric_name"`
	Section           string     `json:"section,omitempty"`
	Type              MetricType `json:"type"`
	BaselineValue     *float64   `json:"baseline_value"`
	SimulatedValue    *float64   `json:"simulated_value"`
	AdjustmentPercent float64    `json:"adjustment_percent"`
	AffectsScore      *bool      `json:"affects_score,omitempty"`
	OutOfRange        bool       `json:"out_of_range,omitempty"`
	Capped            bool       `json:"capped,omitempty"`
	Ignored           bool       `json:"ignored,omitempty"`
	Reason            string     `json:"reason,omitempty"`
	UnmatchedReason   string     `json:"unmatched_reason,omitempty"`
}

// Record returns the detail as a (baseline, simulated) comparison.
func (a AdjustmentDetail) Record() ComparisonRecord {
	return ComparisonRecord{MetricName: a.MetricName, MetricType: a.Type, A: a.BaselineValue, B: a.SimulatedValue}
}

// MetricOverride is a value forced on a metric for a simulation.
type MetricOverride struct {
	MetricName string  `json:"metric_name"`
	Value      float64 `json:"value"`
}

// SimulationResponse holds a baseline score and the score after overrides.
type SimulationResponse struct {
	Ticker           string             `json:"ticker"`
	Year             int                `json:"year"`
	Mode             string             `json:"mode"`
	Section          string             `json:"section,omitempty"`
	BaselineScore    *float64           `json:"baseline_score"`
	SimulatedScore   *float64           `json:"simulated_score"`
	Delta            *float64           `json:"delta"`
	AppliedOverrides []MetricOverride   `json:"applied_overrides"`
	Adjustments      []AdjustmentDetail `json:"adjustments_detail"`
	Message          string             `json:"message,omitempty"`
}

// TickerSeries is the WSM score of one ticker for each compared year.
type TickerSeries struct {
	Ticker       string     `json:"ticker"`
	Scores       []*float64 `json:"scores"`
	MissingYears []int      `json:"missing_years"`
}

// CompareResponse holds score series for several tickers over a year range.
type CompareResponse struct {
	Years  []int          `json:"years"`
	Series []TickerSeries `json:"series"`
}

// DecodeHistorical reads a historical comparison response.
func DecodeHistorical(r io.Reader) (*HistoricalResponse, error) {
	var h HistoricalResponse
	if err := json.NewDecoder(r).Decode(&h); err != nil {
		return nil, fmt.Errorf("decoding historical response: %w", err)
	}
	return &h, nil
}

// DecodeSimulation reads a simulation response.
func DecodeSimulation(r io.Reader) (*SimulationResponse, error) {
	var s SimulationResponse
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding simulation response: %w", err)
	}
	return &s, nil
}

// DecodeCompare reads a multi-ticker compare response.
func DecodeCompare(r io.Reader) (*CompareResponse, error) {
	var c CompareResponse
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding compare response: %w", err)
	}
	return &c, nil
}

// DefaultRowsPath selects the metric rows of a historical response.
const DefaultRowsPath = "$.metrics[*]"

// DecodeMetricRows extracts metric rows from any JSON payload, wherever they
// are, using a JSONPath expression (DefaultRowsPath when empty).
func DecodeMetricRows(r io.Reader, path string) ([]MetricRow, error) {
	if path == "" {
		path = DefaultRowsPath
	}
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath returns a single object for plain paths and a list for wildcards.
	items, ok := jval.([]any)
	if !ok {
		items = []any{jval}
	}

	rows := make([]MetricRow, 0, len(items))
	for i, item := range items {
		// round trip through json to reuse the struct tags.
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		var row MetricRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
