package orcas

import (
	"encoding/json"
	"strings"
)

// MetricType is the polarity of a metric: whether a higher value is favorable.
type MetricType int

const (
	UnknownType MetricType = iota
	Benefit
	Cost
)

// ParseMetricType reads "benefit" or "cost" in any case. Anything else,
// including the backend "unknown" marker, is UnknownType.
func ParseMetricType(s string) MetricType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "benefit":
		return Benefit
	case "cost":
		return Cost
	default:
		return UnknownType
	}
}

func (t MetricType) String() string {
	switch t {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return ""
	}
}

func (t MetricType) MarshalJSON() ([]byte, error) {
	if t == UnknownType {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *MetricType) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = UnknownType
	if s != nil {
		*t = ParseMetricType(*s)
	}
	return nil
}

// UnmarshalText lets catalogs written in YAML use the same "benefit"/"cost" strings.
func (t *MetricType) UnmarshalText(text []byte) error {
	*t = ParseMetricType(string(text))
	return nil
}
