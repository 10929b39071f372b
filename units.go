package orcas

import (
	"bufio"
	"encoding/csv"
	"io"
	"slices"
	"strings"
)

// Header columns of the unit override table. Matching is case-insensitive and
// extra columns are ignored.
const (
	colMetricName  = "metric_name"
	colDisplayUnit = "display_unit"
	colInputMode   = "input_mode"
	colType        = "type"
)

// DefaultDisabledMetrics are metrics excluded from scoring and never registered.
var DefaultDisabledMetrics = []string{"Operating Cash Flow"}

// UnitTable maps metric identifiers to their display UnitConfig.
//
// Every metric name is registered twice: verbatim, and under its NormalizeKey
// token. A table is built once and is read-only afterwards, so it can be shared
// between goroutines. The zero value is an empty table.
type UnitTable struct {
	exact      map[string]UnitConfig
	normalized map[string]UnitConfig
	types      map[string]MetricType // by NormalizeKey token
	names      []string              // registration order, for listings
}

// UnitLookup is the read side of a unit override table.
type UnitLookup interface {
	LookupExact(name string) (UnitConfig, bool)
	LookupNormalized(token string) (UnitConfig, bool)
}

// ParseUnitTable builds a table from CSV text. See DecodeUnitTable.
func ParseUnitTable(text string, disabled ...string) *UnitTable {
	return DecodeUnitTable(strings.NewReader(text), disabled...)
}

// DecodeUnitTable reads a CSV table whose header holds at least the
// metric_name, display_unit and input_mode columns.
//
// It never fails: when a required column is missing, or the reader breaks, the
// rows read so far (possibly none) make the table and callers fall back to
// DefaultUnitConfig. Blank lines are skipped, rows without a metric name are
// ignored, names listed in disabled are skipped and the last row wins for
// duplicate names.
func DecodeUnitTable(r io.Reader, disabled ...string) *UnitTable {
	t := &UnitTable{
		exact:      make(map[string]UnitConfig),
		normalized: make(map[string]UnitConfig),
		types:      make(map[string]MetricType),
	}

	var columns map[string]int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := SplitCSVLine(line)
		if columns == nil {
			columns = headerColumns(fields)
			if !hasColumns(columns, colMetricName, colDisplayUnit, colInputMode) {
				return t
			}
			continue
		}

		raw := cell(fields, columns, colMetricName)
		name := strings.TrimSpace(raw)
		if name == "" || slices.Contains(disabled, name) {
			continue
		}
		t.register(raw, UnitConfig{
			DisplayUnit: strings.TrimSpace(cell(fields, columns, colDisplayUnit)),
			InputMode:   strings.TrimSpace(cell(fields, columns, colInputMode)),
		}, ParseMetricType(cell(fields, columns, colType)))
	}
	return t
}

// register indexes the metric under its verbatim name, its trimmed name and
// its NormalizeKey token.
func (t *UnitTable) register(raw string, cfg UnitConfig, typ MetricType) {
	name := strings.TrimSpace(raw)
	if _, exists := t.exact[name]; !exists {
		t.names = append(t.names, name)
	}
	t.exact[name] = cfg
	t.exact[raw] = cfg
	key := NormalizeKey(name)
	t.normalized[key] = cfg
	if typ != UnknownType {
		t.types[key] = typ
	}
}

// LookupExact returns the config registered under the verbatim metric name.
func (t *UnitTable) LookupExact(name string) (UnitConfig, bool) {
	if t == nil {
		return UnitConfig{}, false
	}
	cfg, ok := t.exact[name]
	return cfg, ok
}

// LookupNormalized returns the config registered under a NormalizeKey token.
// Raw names that happen to equal the token also match.
func (t *UnitTable) LookupNormalized(token string) (UnitConfig, bool) {
	if t == nil {
		return UnitConfig{}, false
	}
	if cfg, ok := t.normalized[token]; ok {
		return cfg, true
	}
	cfg, ok := t.exact[token]
	return cfg, ok
}

// MetricType returns the polarity declared by the optional "type" column.
func (t *UnitTable) MetricType(name string) MetricType {
	if t == nil {
		return UnknownType
	}
	return t.types[NormalizeKey(name)]
}

// Len returns the number of distinct metric names in the table.
func (t *UnitTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the registered metric names in file order.
func (t *UnitTable) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.names)
}

// SplitCSVLine splits one CSV record on commas.
//
// Double-quoted fields may contain commas, and a doubled quote inside a quoted
// field stands for a literal quote:
//
//	A,"B, with comma","C""quoted""" -> [A] [B, with comma] [C"quoted"]
//
// Malformed quoting never fails; the text is kept as read. Every line is read
// on its own, so an unterminated quote cannot swallow the following rows.
func SplitCSVLine(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if len(fields) == 0 {
		if err != nil && err != io.EOF {
			return []string{line}
		}
		return []string{""}
	}
	return fields
}

func headerColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := columns[h]; !dup {
			columns[h] = i
		}
	}
	return columns
}

func hasColumns(columns map[string]int, names ...string) bool {
	for _, n := range names {
		if _, ok := columns[n]; !ok {
			return false
		}
	}
	return true
}

func cell(fields []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return fields[i]
}
