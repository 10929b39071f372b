package orcas

import (
	"math"

	"github.com/shopspring/decimal"
)

// Missing is displayed in place of a value that is absent or not a finite number.
const Missing = "—"

var hundred = decimal.NewFromInt(100)

// Formatter renders metric values for tables and exported reports.
// The zero value uses DefaultLocale.
type Formatter struct {
	Locale Locale
}

// NewFormatter returns a Formatter rendering numbers with the separators of l.
func NewFormatter(l Locale) Formatter { return Formatter{Locale: l} }

func (f Formatter) locale() Locale {
	if f.Locale.Decimal == "" {
		return DefaultLocale
	}
	return f.Locale
}

// Format renders v with cfg's transform, precision and unit suffix:
//
//	Format(0.153, {"%", "percent_points"}) == "15.30%"
//	Format(1.5, {"x", ""})                 == "1.50x"
//	Format(0.12345, {"ratio", ""})         == "0.1235"
//	Format(1200, {"IDR bn", ""})           == "1,200.00 IDR bn"
//
// A nil or non-finite v yields Missing.
func (f Formatter) Format(v *float64, cfg UnitConfig) string {
	s, ok := f.number(v, cfg)
	if !ok {
		return Missing
	}
	return s + cfg.Suffix()
}

// FormatNumber is Format without the unit suffix, for raw tabular exports.
// The percent-points scaling and the precision still apply.
func (f Formatter) FormatNumber(v *float64, cfg UnitConfig) string {
	s, _ := f.number(v, cfg)
	return s
}

func (f Formatter) number(v *float64, cfg UnitConfig) (string, bool) {
	if !finite(v) {
		return Missing, false
	}
	d := decimal.NewFromFloat(*v)
	if cfg.InputMode == PercentPoints {
		d = d.Mul(hundred)
	}
	return f.locale().fixed(d, cfg.Digits()), true
}

// Signed renders v with digits fraction digits and an explicit sign, as used
// for deltas: "+0.1250", "-3.00". Zero is rendered with a '+'.
func (f Formatter) Signed(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Missing
	}
	d := decimal.NewFromFloat(v).Round(int32(digits))
	s := f.locale().fixed(d, digits)
	if !d.IsNegative() {
		s = "+" + s
	}
	return s
}

// SignedValue renders a delta in cfg's unit with an explicit sign: "+2.50%".
func (f Formatter) SignedValue(v float64, cfg UnitConfig) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Missing
	}
	d := decimal.NewFromFloat(v)
	if cfg.InputMode == PercentPoints {
		d = d.Mul(hundred)
	}
	return f.Signed(d.InexactFloat64(), cfg.Digits()) + cfg.Suffix()
}

// Score renders a WSM score with 4 fraction digits: "1.2500".
func (f Formatter) Score(v *float64) string {
	return f.Format(v, UnitConfig{DisplayUnit: UnitRatio})
}

// SignedPercent renders a percentage with an explicit sign: "+20.00%".
func (f Formatter) SignedPercent(p Percent) string {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return Missing
	}
	return f.Signed(float64(p), 2) + "%"
}

// Change renders a relative change between parentheses: "(+10.00%)".
func (f Formatter) Change(p Percent) string {
	s := f.SignedPercent(p)
	if s == Missing {
		return Missing
	}
	return "(" + s + ")"
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
