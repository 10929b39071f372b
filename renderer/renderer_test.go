package renderer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/etnz/orcas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generated = orcas.Meta{ID: "test", GeneratedAt: time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)}

func historical() *orcas.HistoricalReport {
	return &orcas.HistoricalReport{
		Meta:   generated,
		Ticker: "BBCA",
		Name:   "Bank Central Asia",
		Year1:  2022,
		Year2:  2023,
		Rows: []orcas.HistoricalRow{
			{Metric: "ROA", Section: "Profitability", Year1: "15.30%", Year2: "16.00%", Delta: "+0.70%", Change: "(+4.58%)", Trend: orcas.TrendUp},
			{Metric: "Cost | Income", Section: "Efficiency", Year1: "10.00", Year2: "8.00", Delta: "-2.00", Change: "(-20.00%)", Trend: orcas.TrendUp, Significant: true},
		},
		Summary: orcas.Summary{Improved: 2},
		Mismatches: []orcas.Mismatch{
			{Metric: "ROA", Backend: orcas.TrendResult{Trend: orcas.TrendUp, IsSignificant: true}, Core: orcas.TrendResult{Trend: orcas.TrendUp}},
		},
	}
}

func simulation() *orcas.SimulationReport {
	return &orcas.SimulationReport{
		Meta:         generated,
		Ticker:       "BBCA",
		Year:         2023,
		Mode:         "overall",
		Baseline:     "1.2500",
		Simulated:    "1.3750",
		Delta:        "+0.1250",
		DeltaPercent: "(+10.00%)",
		Adjustments: []orcas.AdjustmentRow{
			{Metric: "ROE", Baseline: "10.00%", Simulated: "12.00%", Adjustment: "+20.00%", Change: "(+20.00%)", Trend: orcas.TrendUp, Significant: true},
		},
	}
}

func compare() *orcas.CompareReport {
	return &orcas.CompareReport{
		Meta:  generated,
		Years: []int{2022, 2023},
		Series: []orcas.SeriesRow{
			{Ticker: "BBCA", Scores: []string{"1.0000", "1.5000"}, Change: "+0.5000", Percent: "(+50.00%)"},
			{Ticker: "BBRI", Scores: []string{"2.0000"}, Change: orcas.Missing, Percent: orcas.Missing},
		},
		Average: orcas.SeriesRow{Ticker: orcas.AverageLabel, Scores: []string{"1.5000", "1.5000"}, Change: "+0.0000", Percent: "(+0.00%)"},
	}
}

func TestRenderHistorical(t *testing.T) {
	got := RenderHistorical(historical())
	assert.NotContains(t, got, "error ")
	assert.True(t, strings.HasPrefix(got, "# Historical Comparison: Bank Central Asia (BBCA), 2022 vs 2023\n"), got)
	assert.Contains(t, got, "*Generated 2006-01-02 15:04*")
	assert.Contains(t, got, "| Metric | Section | 2022 | 2023 | Delta | Change | Trend | Significant |")
	assert.Contains(t, got, "| ROA | Profitability | 15.30% | 16.00% | +0.70% | (+4.58%) | Bullish | no |\n")
	assert.Contains(t, got, `| Cost \| Income |`)
	assert.Contains(t, got, "* Improved: 2\n")
	assert.Contains(t, got, "## Consistency Check")
	assert.Contains(t, got, "| ROA | Bullish (significant) | Bullish |")
}

func TestRenderHistoricalWithoutMismatch(t *testing.T) {
	r := historical()
	r.Mismatches = nil
	got := RenderHistorical(r)
	assert.NotContains(t, got, "Consistency Check")
	assert.True(t, strings.HasSuffix(got, "* N/A: 0\n"), "%q", got)
}

func TestRenderSimulation(t *testing.T) {
	got := RenderSimulation(simulation())
	assert.Contains(t, got, "# Simulation: BBCA 2023 (overall)\n")
	assert.Contains(t, got, "| 1.2500 | 1.3750 | +0.1250 | (+10.00%) |")
	assert.Contains(t, got, "| ROE |  | 10.00% | 12.00% | +20.00% | (+20.00%) | Bullish |  |")

	empty := simulation()
	empty.Adjustments = nil
	empty.Message = "no override matched"
	got = RenderSimulation(empty)
	assert.NotContains(t, got, "## Adjustments")
	assert.Contains(t, got, "> no override matched")
}

func TestRenderCompare(t *testing.T) {
	got := RenderCompare(compare())
	assert.Contains(t, got, "# Score Comparison: 2022 to 2023\n")
	assert.Contains(t, got, "| Ticker | 2022 | 2023 | Change | % |\n|:---|---:|---:|---:|---:|\n")
	assert.Contains(t, got, "| BBRI | 2.0000 | — | — | — |\n")
	assert.Contains(t, got, "| Average | 1.5000 | 1.5000 | +0.0000 | (+0.00%) |\n")
}

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteCSV(&b, simulation()))
	want := "Score\n" +
		"Baseline,Simulated,Delta,Change\n" +
		"1.2500,1.3750,+0.1250,(+10.00%)\n" +
		"\n" +
		"Adjustments\n" +
		"Metric,Section,Baseline,Simulated,Adjustment,Change,Trend,Note\n" +
		"ROE,,10.00%,12.00%,+20.00%,(+20.00%),Bullish,\n"
	assert.Equal(t, want, b.String())
}

func TestWriteHTML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Export(&b, historical(), HTML))
	got := b.String()
	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<table>")
	assert.Contains(t, got, ">15.30%</td>")
}

func TestWritePDF(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Export(&b, compare(), PDF))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))
}

func TestExportJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Export(&b, historical(), JSON))
	var got map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, "BBCA", got["ticker"])
	rows := got["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bullish", rows[0].(map[string]any)["trend"])
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"md", "CSV", " html ", "pdf", "json"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestRenderTables(t *testing.T) {
	got := renderTables(compare())
	assert.Contains(t, got, "# Score Comparison: 2022 to 2023\n")
	assert.Contains(t, got, "| Average | 1.5000 | 1.5000 | +0.0000 | (+0.00%) |\n")
}
