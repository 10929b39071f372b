package orcas

import (
	"fmt"
	"strconv"
)

// Historical builds the display report of a historical comparison.
//
// Each row is classified locally; when the backend carried its own trend the
// backend value is shown and any disagreement is listed in Mismatches.
func (e *Engine) Historical(h *HistoricalResponse) *HistoricalReport {
	f := e.formatter
	r := &HistoricalReport{
		Meta:   newMeta(),
		Ticker: h.Ticker,
		Name:   h.Name,
		Year1:  h.Year1,
		Year2:  h.Year2,
	}

	results := make([]TrendResult, 0, len(h.Metrics))
	for _, m := range h.Metrics {
		cfg := e.UnitFor(m.MetricKey, m.MetricName)
		res := e.classify(m)
		if backend, ok := m.Backend(); ok {
			res = backend
		}
		results = append(results, res)

		row := HistoricalRow{
			Metric:      m.MetricName,
			Section:     m.Section,
			Type:        e.MetricType(m.MetricType, m.MetricKey, m.MetricName).String(),
			Unit:        cfg.DisplayUnit,
			Year1:       f.Format(m.ValueYear1, cfg),
			Year2:       f.Format(m.ValueYear2, cfg),
			Delta:       Missing,
			Change:      Missing,
			Trend:       res.Trend,
			Significant: res.IsSignificant,
		}
		if d, ok := NewDeltaOf(m.ValueYear1, m.ValueYear2); ok {
			row.Delta = f.SignedValue(d.Absolute, cfg)
			row.Change = f.Change(d.Percent)
		}
		r.Rows = append(r.Rows, row)
	}
	r.Summary = Summarize(results)
	r.Mismatches = e.Check(h.Metrics)
	return r
}

func (r *HistoricalReport) Heading() string {
	name := r.Ticker
	if r.Name != "" && r.Name != r.Ticker {
		name = fmt.Sprintf("%s (%s)", r.Name, r.Ticker)
	}
	return fmt.Sprintf("Historical Comparison: %s, %d vs %d", name, r.Year1, r.Year2)
}

func (r *HistoricalReport) Tables() []Table {
	metrics := Table{
		Title:   "Metrics",
		Columns: []string{"Metric", "Section", strconv.Itoa(r.Year1), strconv.Itoa(r.Year2), "Delta", "Change", "Trend", "Significant"},
	}
	for _, row := range r.Rows {
		metrics.Rows = append(metrics.Rows, []string{
			row.Metric, row.Section, row.Year1, row.Year2, row.Delta, row.Change, row.Trend.Label(), yesNo(row.Significant),
		})
	}
	summary := Table{
		Title:   "Summary",
		Columns: []string{"Improved", "Declined", "Stable", "N/A"},
		Rows: [][]string{{
			strconv.Itoa(r.Summary.Improved),
			strconv.Itoa(r.Summary.Declined),
			strconv.Itoa(r.Summary.Stable),
			strconv.Itoa(r.Summary.NA),
		}},
	}
	tables := []Table{metrics, summary}
	if len(r.Mismatches) > 0 {
		check := Table{Title: "Consistency Check", Columns: []string{"Metric", "Backend", "Local"}}
		for _, m := range r.Mismatches {
			check.Rows = append(check.Rows, []string{m.Metric, describe(m.Backend), describe(m.Core)})
		}
		tables = append(tables, check)
	}
	return tables
}

func describe(r TrendResult) string {
	if r.IsSignificant {
		return r.Trend.Label() + " (significant)"
	}
	return r.Trend.Label()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
