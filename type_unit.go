package orcas

// Display units with a dedicated rendering rule. Any other non-empty unit
// (e.g. "IDR bn") is appended after a space.
const (
	UnitNone    = ""
	UnitPercent = "%"
	UnitTimes   = "x"
	UnitRatio   = "ratio"
)

// PercentPoints is the input mode of metrics stored as a fraction and shown
// as a percentage: 0.153 is displayed as 15.30%.
const PercentPoints = "percent_points"

// UnitConfig tells how a metric value is transformed and labelled for display.
type UnitConfig struct {
	DisplayUnit string `json:"display_unit"`
	InputMode   string `json:"input_mode"`
}

// DefaultUnitConfig is used for every metric the override table does not know:
// no unit, two fraction digits, no transform.
var DefaultUnitConfig = UnitConfig{}

// Digits returns the number of fraction digits used to display values in this unit.
func (c UnitConfig) Digits() int {
	if c.DisplayUnit == UnitRatio {
		return 4
	}
	return 2
}

// Suffix returns the text appended after a formatted value.
func (c UnitConfig) Suffix() string {
	switch c.DisplayUnit {
	case UnitNone, UnitRatio:
		return ""
	case UnitPercent, UnitTimes:
		return c.DisplayUnit
	default:
		return " " + c.DisplayUnit
	}
}

func (c UnitConfig) String() string {
	unit := c.DisplayUnit
	if unit == "" {
		unit = "(none)"
	}
	if c.InputMode == "" {
		return unit
	}
	return unit + " [" + c.InputMode + "]"
}
