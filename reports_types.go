package orcas

import (
	"os"
	"time"

	"github.com/google/uuid"
)

// Now is the current time used in reports.
// Tests pin it with ORCAS_TESTING_NOW="2006-01-02 15:04:05".
func Now() time.Time {
	if s := os.Getenv("ORCAS_TESTING_NOW"); s != "" {
		t, err := time.Parse(time.DateTime, s)
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Meta identifies a generated report.
type Meta struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
}

func newMeta() Meta {
	return Meta{ID: uuid.NewString(), GeneratedAt: Now()}
}

// Table is a tabular report section made of display strings only. Exporters
// place these cells as they are, so exported and displayed values agree.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Tabular is implemented by every report.
type Tabular interface {
	Heading() string
	Tables() []Table
}

// HistoricalRow is one metric of a two-year comparison, ready for display.
type HistoricalRow struct {
	Metric      string
	Section     string
	Type        string
	Unit        string
	Year1       string
	Year2       string
	Delta       string
	Change      string
	Trend       Trend
	Significant bool
}

func (r HistoricalRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("metric", r.Metric)
	w.Optional("section", r.Section)
	w.Optional("type", r.Type)
	w.Optional("unit", r.Unit)
	w.Append("year1", r.Year1)
	w.Append("year2", r.Year2)
	w.Append("delta", r.Delta)
	w.Append("change", r.Change)
	w.Append("trend", r.Trend.Label())
	w.Append("significant", r.Significant)
	return w.MarshalJSON()
}

// HistoricalReport compares one ticker's metrics between two years.
type HistoricalReport struct {
	Meta
	Ticker     string          `json:"ticker"`
	Name       string          `json:"name"`
	Year1      int             `json:"year1"`
	Year2      int             `json:"year2"`
	Rows       []HistoricalRow `json:"rows"`
	Summary    Summary         `json:"summary"`
	Mismatches []Mismatch      `json:"mismatches,omitempty"`
}

// AdjustmentRow is one overridden metric of a simulation, ready for display.
type AdjustmentRow struct {
	Metric      string
	Section     string
	Baseline    string
	Simulated   string
	Adjustment  string
	Change      string
	Trend       Trend
	Significant bool
	Note        string
}

func (r AdjustmentRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("metric", r.Metric)
	w.Optional("section", r.Section)
	w.Append("baseline", r.Baseline)
	w.Append("simulated", r.Simulated)
	w.Append("adjustment", r.Adjustment)
	w.Append("change", r.Change)
	w.Append("trend", r.Trend.Label())
	w.Append("significant", r.Significant)
	w.Optional("note", r.Note)
	return w.MarshalJSON()
}

// SimulationReport shows how overrides move a ticker's score.
type SimulationReport struct {
	Meta
	Ticker       string          `json:"ticker"`
	Year         int             `json:"year"`
	Mode         string          `json:"mode"`
	Section      string          `json:"section,omitempty"`
	Baseline     string          `json:"baseline"`
	Simulated    string          `json:"simulated"`
	Delta        string          `json:"delta"`
	DeltaPercent string          `json:"delta_percent"`
	Adjustments  []AdjustmentRow `json:"adjustments"`
	Message      string          `json:"message,omitempty"`
}

// SeriesRow is the score history of one ticker, or the average of all.
type SeriesRow struct {
	Ticker  string   `json:"ticker"`
	Scores  []string `json:"scores"`
	Change  string   `json:"change"`
	Percent string   `json:"percent"`
}

// CompareReport shows several tickers' scores over a year range.
type CompareReport struct {
	Meta
	Years   []int       `json:"years"`
	Series  []SeriesRow `json:"series"`
	Average SeriesRow   `json:"average"`
}
