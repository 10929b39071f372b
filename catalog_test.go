package orcas

import (
	"strings"
	"testing"
)

const catalogJSON = `{
  "sections": [
    {"key": "income", "label": "Income Statement", "metrics": [
      {"key": "total_revenue", "label": "Total Revenue", "type": "benefit", "default_weight": 0.3}
    ]},
    {"key": "balance", "label": "Balance Sheet", "metrics": [
      {"key": "return_on_assets", "label": "ROA", "type": "benefit", "default_weight": 0.2},
      {"key": "debt_to_equity", "label": "Debt to Equity", "type": "cost"},
      {"key": "sharpe", "label": "Sharpe", "type": null}
    ]}
  ]
}`

const catalogYAML = `sections:
  - key: income
    label: Income Statement
    metrics:
      - key: total_revenue
        label: Total Revenue
        type: benefit
        default_weight: 0.3
  - key: balance
    label: Balance Sheet
    metrics:
      - key: debt_to_equity
        label: Debt to Equity
        type: COST
`

func TestDecodeCatalog(t *testing.T) {
	c, err := DecodeCatalog(strings.NewReader(catalogJSON))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	metrics := c.Metrics()
	if len(metrics) != 4 {
		t.Fatalf("Metrics() has %d entries, want 4", len(metrics))
	}
	if got := metrics[0]; got.Section != "income" || got.Type != Benefit || got.DefaultWeight == nil || *got.DefaultWeight != 0.3 {
		t.Errorf("Metrics()[0] = %+v", got)
	}
	if got := metrics[2]; got.Section != "balance" || got.Type != Cost || got.DefaultWeight != nil {
		t.Errorf("Metrics()[2] = %+v", got)
	}
	if got := metrics[3].Type; got != UnknownType {
		t.Errorf("null type = %v, want unknown", got)
	}

	if _, err := DecodeCatalog(strings.NewReader("{")); err == nil {
		t.Error("DecodeCatalog() accepted truncated JSON")
	}
}

func TestDecodeCatalogYAML(t *testing.T) {
	c, err := DecodeCatalogYAML(strings.NewReader(catalogYAML))
	if err != nil {
		t.Fatalf("DecodeCatalogYAML() error = %v", err)
	}
	m, ok := c.Find("debt-to-equity")
	if !ok {
		t.Fatal("Find(debt-to-equity) found nothing")
	}
	if m.Type != Cost || m.Section != "balance" {
		t.Errorf("Find(debt-to-equity) = %+v", m)
	}

	empty, err := DecodeCatalogYAML(strings.NewReader(""))
	if err != nil || len(empty.Metrics()) != 0 {
		t.Errorf("DecodeCatalogYAML(empty) = %+v, %v", empty, err)
	}
}

func TestCatalogFind(t *testing.T) {
	c, err := DecodeCatalog(strings.NewReader(catalogJSON))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		names []string
		want  string
		found bool
	}{
		{[]string{"return_on_assets"}, "return_on_assets", true},
		{[]string{"roa"}, "return_on_assets", true},
		{[]string{"", "Total  Revenue"}, "total_revenue", true},
		{[]string{"unknown", "sharpe"}, "sharpe", true},
		{[]string{"Net Interest Margin"}, "", false},
		{nil, "", false},
	}
	for _, tt := range tests {
		m, ok := c.Find(tt.names...)
		if ok != tt.found || m.Key != tt.want {
			t.Errorf("Find(%q) = %q, %v, want %q, %v", tt.names, m.Key, ok, tt.want, tt.found)
		}
	}

	var nilCatalog *Catalog
	if _, ok := nilCatalog.Find("roa"); ok || nilCatalog.Metrics() != nil {
		t.Error("nil catalog is not empty")
	}
}
