package orcas

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Locale holds the separators used to render numbers.
type Locale struct {
	Decimal  string
	Thousand string
}

// DefaultLocale renders 1234.5 as "1,234.50".
var DefaultLocale = Locale{Decimal: ".", Thousand: ","}

// LocaleFor returns the separators conventionally used with an ISO 4217
// currency code, e.g. "IDR" renders 1234.5 as "1.234,50". Unknown codes get
// DefaultLocale.
func LocaleFor(code string) Locale {
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if cur == nil {
		return DefaultLocale
	}
	return Locale{Decimal: cur.Decimal, Thousand: cur.Thousand}
}

// largest magnitude, in minor units, go-money's int64 formatter can take.
var maxMinor = decimal.NewFromInt(1<<63 - 1)

// fixed renders d rounded to digits fraction digits, with thousand grouping.
// Trailing zeros are kept.
func (l Locale) fixed(d decimal.Decimal, digits int) string {
	d = d.Round(int32(digits))
	minor := d.Shift(int32(digits))
	if minor.Abs().GreaterThan(maxMinor) {
		return l.group(d, digits)
	}
	return money.NewFormatter(digits, l.Decimal, l.Thousand, "", "1").Format(minor.IntPart())
}

// group is fixed for magnitudes beyond go-money's int64 amounts.
func (l Locale) group(d decimal.Decimal, digits int) string {
	integer, fraction, _ := strings.Cut(d.Abs().StringFixed(int32(digits)), ".")
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, c := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(l.Thousand)
		}
		b.WriteRune(c)
	}
	if digits > 0 {
		b.WriteString(l.Decimal)
		b.WriteString(fraction)
	}
	return b.String()
}
