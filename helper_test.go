package orcas

import "math"

// ptr is a helper for tests to build nullable values from constants.
func ptr(v float64) *float64 { return &v }

var (
	nan = ptr(math.NaN())
	inf = ptr(math.Inf(1))
)

// sample unit override table used across tests.
const unitsCSV = `metric_name,display_unit,input_mode,type
ROA,%,percent_points,benefit
Return on Equity (ROE),%,percent_points,benefit
Debt to Equity,x,,cost
Sharpe,ratio,,
Total Revenue,IDR bn,,benefit
Operating Cash Flow,IDR bn,,benefit
`
