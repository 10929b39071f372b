package orcas

import (
	"fmt"
	"strconv"
)

// AverageLabel names the average series of a compare report.
const AverageLabel = "Average"

// Compare builds the display report of a multi-ticker comparison. The
// average series only counts the scores available for each year.
func (e *Engine) Compare(c *CompareResponse) *CompareReport {
	r := &CompareReport{
		Meta:  newMeta(),
		Years: c.Years,
	}
	all := make([][]*float64, 0, len(c.Series))
	for _, s := range c.Series {
		r.Series = append(r.Series, e.seriesRow(s.Ticker, s.Scores))
		all = append(all, s.Scores)
	}
	r.Average = e.seriesRow(AverageLabel, AverageSeries(all))
	return r
}

func (e *Engine) seriesRow(ticker string, scores []*float64) SeriesRow {
	f := e.formatter
	row := SeriesRow{Ticker: ticker, Change: Missing, Percent: Missing}
	for _, v := range scores {
		row.Scores = append(row.Scores, f.Score(v))
	}
	first, last := Span(scores)
	if first != nil && first != last {
		d := NewDelta(*first, *last)
		row.Change = f.Signed(d.Absolute, 4)
		row.Percent = f.Change(d.Percent)
	}
	return row
}

func (r *CompareReport) Heading() string {
	if len(r.Years) == 0 {
		return "Score Comparison"
	}
	return fmt.Sprintf("Score Comparison: %d to %d", r.Years[0], r.Years[len(r.Years)-1])
}

func (r *CompareReport) Tables() []Table {
	t := Table{Title: "Scores", Columns: []string{"Ticker"}}
	for _, y := range r.Years {
		t.Columns = append(t.Columns, strconv.Itoa(y))
	}
	t.Columns = append(t.Columns, "Change", "%")
	for _, s := range append(r.Series, r.Average) {
		t.Rows = append(t.Rows, r.cells(s))
	}
	return []Table{t}
}

// cells pads short series so every row has one cell per year.
func (r *CompareReport) cells(s SeriesRow) []string {
	row := []string{s.Ticker}
	for i := range r.Years {
		if i < len(s.Scores) {
			row = append(row, s.Scores[i])
		} else {
			row = append(row, Missing)
		}
	}
	return append(row, s.Change, s.Percent)
}
