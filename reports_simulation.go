package orcas

import (
	"fmt"
	"strings"
)

// Simulation builds the display report of a what-if simulation.
func (e *Engine) Simulation(s *SimulationResponse) *SimulationReport {
	f := e.formatter
	r := &SimulationReport{
		Meta:         newMeta(),
		Ticker:       s.Ticker,
		Year:         s.Year,
		Mode:         s.Mode,
		Section:      s.Section,
		Baseline:     f.Score(s.BaselineScore),
		Simulated:    f.Score(s.SimulatedScore),
		Delta:        Missing,
		DeltaPercent: Missing,
		Message:      s.Message,
	}
	if d, ok := NewDeltaOf(s.BaselineScore, s.SimulatedScore); ok {
		r.Delta = f.Signed(d.Absolute, 4)
		r.DeltaPercent = f.Change(d.Percent)
	} else if finite(s.Delta) {
		r.Delta = f.Signed(*s.Delta, 4)
	}

	for _, a := range s.Adjustments {
		cfg := e.UnitFor(a.MetricKey, a.MetricName)
		rec := a.Record()
		rec.MetricType = e.MetricType(a.Type, a.MetricKey, a.MetricName)
		res := Classify(rec)

		row := AdjustmentRow{
			Metric:      a.MetricName,
			Section:     a.Section,
			Baseline:    f.Format(a.BaselineValue, cfg),
			Simulated:   f.Format(a.SimulatedValue, cfg),
			Adjustment:  f.SignedPercent(Percent(a.AdjustmentPercent)),
			Change:      Missing,
			Trend:       res.Trend,
			Significant: res.IsSignificant,
			Note:        note(a),
		}
		if d, ok := NewDeltaOf(a.BaselineValue, a.SimulatedValue); ok {
			row.Change = f.Change(d.Percent)
		}
		r.Adjustments = append(r.Adjustments, row)
	}
	return r
}

// note summarizes the backend flags of an adjustment.
func note(a AdjustmentDetail) string {
	var parts []string
	if a.Ignored {
		parts = append(parts, "ignored")
	}
	if a.Capped {
		parts = append(parts, "capped")
	}
	if a.OutOfRange {
		parts = append(parts, "out of range")
	}
	if a.AffectsScore != nil && !*a.AffectsScore {
		parts = append(parts, "no score impact")
	}
	for _, reason := range []string{a.Reason, a.UnmatchedReason} {
		if reason != "" {
			parts = append(parts, reason)
		}
	}
	return strings.Join(parts, "; ")
}

func (r *SimulationReport) Heading() string {
	h := fmt.Sprintf("Simulation: %s %d (%s)", r.Ticker, r.Year, r.Mode)
	if r.Section != "" {
		h += ", " + r.Section
	}
	return h
}

func (r *SimulationReport) Tables() []Table {
	score := Table{
		Title:   "Score",
		Columns: []string{"Baseline", "Simulated", "Delta", "Change"},
		Rows:    [][]string{{r.Baseline, r.Simulated, r.Delta, r.DeltaPercent}},
	}
	adj := Table{
		Title:   "Adjustments",
		Columns: []string{"Metric", "Section", "Baseline", "Simulated", "Adjustment", "Change", "Trend", "Note"},
	}
	for _, a := range r.Adjustments {
		adj.Rows = append(adj.Rows, []string{
			a.Metric, a.Section, a.Baseline, a.Simulated, a.Adjustment, a.Change, a.Trend.Label(), a.Note,
		})
	}
	return []Table{score, adj}
}
