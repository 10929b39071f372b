package orcas

import "strconv"

// CatalogRow is one catalog metric with the unit it resolves to.
type CatalogRow struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Label   string `json:"label"`
	Type    string `json:"type,omitempty"`
	Weight  string `json:"default_weight"`
	Unit    string `json:"unit"`
	Matched string `json:"matched,omitempty"` // candidate that resolved the unit
}

// CatalogReport lists the catalog and how each metric resolves against the
// unit override table. Metrics that resolve to nothing use DefaultUnitConfig.
type CatalogReport struct {
	Meta
	Rows []CatalogRow `json:"rows"`
}

// Catalog builds the catalog report.
func (e *Engine) Catalog() *CatalogReport {
	r := &CatalogReport{Meta: newMeta()}
	for _, m := range e.ref.Catalog.Metrics() {
		res := e.Resolve(m.Key, m.Label)
		row := CatalogRow{
			Section: m.Section,
			Key:     m.Key,
			Label:   m.Label,
			Type:    e.MetricType(m.Type, m.Key, m.Label).String(),
			Weight:  e.formatter.Format(m.DefaultWeight, DefaultUnitConfig),
			Unit:    res.ConfigOrDefault().String(),
			Matched: res.Matched,
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

func (r *CatalogReport) Heading() string { return "Metrics Catalog" }

func (r *CatalogReport) Tables() []Table {
	t := Table{
		Title:   strconv.Itoa(len(r.Rows)) + " metrics",
		Columns: []string{"Section", "Key", "Label", "Type", "Weight", "Unit", "Matched"},
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{row.Section, row.Key, row.Label, row.Type, row.Weight, row.Unit, row.Matched})
	}
	return []Table{t}
}
