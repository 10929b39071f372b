package orcas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ternarybob/arbor"
)

// testEngine returns an engine over the sample unit table and catalog.
func testEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := DecodeCatalog(strings.NewReader(catalogJSON))
	if err != nil {
		t.Fatal(err)
	}
	ref := &Reference{Units: ParseUnitTable(unitsCSV, DefaultDisabledMetrics...), Catalog: catalog}
	return NewEngine(ref, Formatter{}, arbor.NewLogger())
}

func TestEngineCandidates(t *testing.T) {
	e := testEngine(t)
	tests := []struct {
		key, name string
		want      []string
	}{
		{"return_on_assets", "Return on Assets", []string{"return_on_assets", "ROA", "return_on_assets", "Return on Assets"}},
		{"", "Total Revenue", []string{"", "Total Revenue", "total_revenue", "Total Revenue"}},
		{"", "Net Interest Margin", []string{"", "Net Interest Margin"}},
	}
	for _, tt := range tests {
		if got := e.Candidates(tt.key, tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Candidates(%q, %q) = %q, want %q", tt.key, tt.name, got, tt.want)
		}
	}
}

func TestEngineUnitFor(t *testing.T) {
	e := testEngine(t)
	roa := UnitConfig{DisplayUnit: "%", InputMode: PercentPoints}
	tests := []struct {
		key, name string
		want      UnitConfig
	}{
		// the backend key is only known to the catalog, which links it to the ROA label.
		{"return_on_assets", "Return on Assets", roa},
		{"", "return-on-equity-(roe)", roa},
		{"debt_to_equity", "", UnitConfig{DisplayUnit: "x"}},
		{"", "Operating Cash Flow", DefaultUnitConfig},
		{"", "Net Interest Margin", DefaultUnitConfig},
	}
	for _, tt := range tests {
		if got := e.UnitFor(tt.key, tt.name); got != tt.want {
			t.Errorf("UnitFor(%q, %q) = %v, want %v", tt.key, tt.name, got, tt.want)
		}
	}

	if got := e.Resolve("return_on_assets", "").Matched; got != "ROA" {
		t.Errorf("Resolve().Matched = %q, want ROA", got)
	}
}

func TestEngineMetricType(t *testing.T) {
	e := testEngine(t)
	tests := []struct {
		known     MetricType
		key, name string
		want      MetricType
	}{
		{Benefit, "debt_to_equity", "", Benefit},
		{UnknownType, "debt_to_equity", "", Cost},
		{UnknownType, "", "Return on Equity (ROE)", Benefit},
		{UnknownType, "", "Sharpe", UnknownType},
		{UnknownType, "", "Net Interest Margin", UnknownType},
	}
	for _, tt := range tests {
		if got := e.MetricType(tt.known, tt.key, tt.name); got != tt.want {
			t.Errorf("MetricType(%v, %q, %q) = %v, want %v", tt.known, tt.key, tt.name, got, tt.want)
		}
	}
}

func TestEngineCheck(t *testing.T) {
	e := testEngine(t)
	up, down := "up", "down"
	yes, no := true, false
	rows := []MetricRow{
		{MetricName: "ROA", MetricType: Benefit, ValueYear1: ptr(0.1), ValueYear2: ptr(0.15), Trend: &up, IsSignificant: &yes},
		// the backend reads a cost decrease as "down".
		{MetricName: "Debt to Equity", ValueYear1: ptr(10), ValueYear2: ptr(8), Trend: &down, IsSignificant: &yes},
		{MetricName: "Sharpe", ValueYear1: ptr(1), ValueYear2: ptr(1.1), Trend: &up, IsSignificant: &no},
		{MetricName: "Total Revenue", ValueYear1: ptr(1), ValueYear2: ptr(2)},
	}
	got := e.Check(rows)
	want := []Mismatch{{
		Metric:  "Debt to Equity",
		Backend: TrendResult{TrendDown, true},
		Core:    TrendResult{TrendUp, true},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check() = %+v, want %+v", got, want)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(nil, Formatter{}, nil)
	if got := e.UnitFor("", "ROA"); got != DefaultUnitConfig {
		t.Errorf("UnitFor() = %v, want the default config", got)
	}
	if got := e.MetricType(UnknownType, "", "ROA"); got != UnknownType {
		t.Errorf("MetricType() = %v, want unknown", got)
	}

	// mismatches are logged through the default logger.
	down := "down"
	rows := []MetricRow{{MetricName: "ROA", ValueYear1: ptr(1), ValueYear2: ptr(2), Trend: &down}}
	if got := e.Check(rows); len(got) != 1 {
		t.Errorf("Check() = %+v, want one mismatch", got)
	}
}

func TestLoadReferenceFiles(t *testing.T) {
	dir := t.TempDir()
	units := filepath.Join(dir, "units.csv")
	catalog := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(units, []byte(unitsCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(catalog, []byte(catalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	ref := LoadReference(context.Background(), arbor.NewLogger(), Sources{
		Units:    units,
		Catalog:  catalog,
		Disabled: []string{"Sharpe"},
	})
	if got, want := ref.Units.Len(), 5; got != want {
		t.Errorf("Units.Len() = %d, want %d", got, want)
	}
	if _, ok := ref.Units.LookupExact("Sharpe"); ok {
		t.Error("disabled metric Sharpe was loaded")
	}
	if got, want := len(ref.Catalog.Metrics()), 2; got != want {
		t.Errorf("len(Catalog.Metrics()) = %d, want %d", got, want)
	}
}

func TestLoadReferenceRemote(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/units.csv":
			w.Write([]byte(unitsCSV))
		case "/catalog.json":
			w.Write([]byte(catalogJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ref := LoadReference(context.Background(), arbor.NewLogger(), Sources{
		Units:   server.URL + "/units.csv",
		Catalog: server.URL + "/catalog.json",
	})
	if got, want := ref.Units.Len(), 6; got != want {
		t.Errorf("Units.Len() = %d, want %d", got, want)
	}
	if _, ok := ref.Catalog.Find("roa"); !ok {
		t.Error("remote catalog was not loaded")
	}

	missing := LoadReference(context.Background(), arbor.NewLogger(), Sources{
		Units:   server.URL + "/missing.csv",
		Catalog: server.URL + "/missing.json",
	})
	if missing.Units.Len() != 0 || len(missing.Catalog.Metrics()) != 0 {
		t.Errorf("LoadReference(missing) = %+v, want empty reference data", missing)
	}
}

func TestLoadReferenceMissing(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	ref := LoadReference(context.Background(), arbor.NewLogger(), Sources{
		Units:   filepath.Join(dir, "missing.csv"),
		Catalog: bad,
	})
	if ref.Units == nil || ref.Catalog == nil {
		t.Fatal("LoadReference() returned nil parts")
	}
	if ref.Units.Len() != 0 || len(ref.Catalog.Metrics()) != 0 {
		t.Errorf("LoadReference() = %+v, want empty reference data", ref)
	}
	e := NewEngine(ref, Formatter{}, nil)
	if got := e.Formatter().Format(ptr(0.153), e.UnitFor("", "ROA")); got != "0.15" {
		t.Errorf("Format() without overrides = %q, want 0.15", got)
	}
}
