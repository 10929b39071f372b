package orcas

import (
	"github.com/ternarybob/arbor"
)

// Engine bundles the reference data with the resolver and formatter so that
// every view (historical, simulation, compare) and every export resolves and
// renders metrics the same way.
type Engine struct {
	ref       *Reference
	resolver  Resolver
	formatter Formatter
	logger    arbor.ILogger
}

// NewEngine returns an Engine reading ref. A nil ref behaves as empty
// reference data.
func NewEngine(ref *Reference, f Formatter, logger arbor.ILogger) *Engine {
	if ref == nil {
		ref = &Reference{}
	}
	if logger == nil {
		logger = arbor.NewLogger()
	}
	return &Engine{
		ref:       ref,
		resolver:  Resolver{Lookup: ref.Units},
		formatter: f,
		logger:    logger,
	}
}

// Formatter returns the formatter used by the engine.
func (e *Engine) Formatter() Formatter { return e.formatter }

// Reference returns the reference data read by the engine.
func (e *Engine) Reference() *Reference { return e.ref }

// Candidates returns the identity candidates of a backend metric in
// precedence order: backend key, catalog label, catalog key, raw name.
func (e *Engine) Candidates(metricKey, metricName string) []string {
	candidates := []string{metricKey}
	if m, ok := e.ref.Catalog.Find(metricKey, metricName); ok {
		candidates = append(candidates, m.Label, m.Key)
	}
	return append(candidates, metricName)
}

// Resolve resolves the unit config of a backend metric.
func (e *Engine) Resolve(metricKey, metricName string) Resolution {
	return e.resolver.Resolve(e.Candidates(metricKey, metricName)...)
}

// UnitFor returns the unit config of a backend metric, DefaultUnitConfig when
// nothing matches.
func (e *Engine) UnitFor(metricKey, metricName string) UnitConfig {
	return e.Resolve(metricKey, metricName).ConfigOrDefault()
}

// MetricType returns known when set, and otherwise the polarity declared by
// the catalog or the unit table.
func (e *Engine) MetricType(known MetricType, metricKey, metricName string) MetricType {
	if known != UnknownType {
		return known
	}
	if m, ok := e.ref.Catalog.Find(metricKey, metricName); ok && m.Type != UnknownType {
		return m.Type
	}
	for _, name := range []string{metricKey, metricName} {
		if t := e.ref.Units.MetricType(name); t != UnknownType {
			return t
		}
	}
	return UnknownType
}

// Mismatch is a metric where the backend classification differs from the one
// computed locally.
type Mismatch struct {
	Metric  string      `json:"metric"`
	Backend TrendResult `json:"backend"`
	Core    TrendResult `json:"core"`
}

// Check classifies every row and returns the rows whose backend trend or
// significance disagrees. Rows without a backend trend are not checked.
func (e *Engine) Check(rows []MetricRow) []Mismatch {
	var mismatches []Mismatch
	for _, row := range rows {
		backend, ok := row.Backend()
		if !ok {
			continue
		}
		core := e.classify(row)
		if core != backend {
			mismatches = append(mismatches, Mismatch{Metric: row.MetricName, Backend: backend, Core: core})
			e.logger.Warn().
				Str("metric", row.MetricName).
				Str("backend", backend.String()).
				Str("core", core.String()).
				Msg("Backend trend differs from local classification")
		}
	}
	return mismatches
}

func (e *Engine) classify(row MetricRow) TrendResult {
	rec := row.Record()
	rec.MetricType = e.MetricType(row.MetricType, row.MetricKey, row.MetricName)
	return Classify(rec)
}
