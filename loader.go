package orcas

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
)

// Sources locates the reference data. Each field is a local path or an
// http(s) URL; an empty field leaves that part empty.
type Sources struct {
	Units    string
	Catalog  string
	Disabled []string      // metric names skipped from the unit table
	Timeout  time.Duration // for remote sources, 30s when zero
}

// Reference is the reference data shared by every view: the unit override
// table and the metrics catalog. It is loaded once and never modified, so it
// can be read concurrently.
type Reference struct {
	Units   *UnitTable
	Catalog *Catalog
}

// LoadReference loads the unit table and the catalog.
//
// It never fails: a source that cannot be read or decoded is logged as a
// warning and left empty, and everything downstream falls back to defaults.
func LoadReference(ctx context.Context, logger arbor.ILogger, src Sources) *Reference {
	timeout := src.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := daily(timeout)
	ref := &Reference{Units: &UnitTable{}, Catalog: &Catalog{}}

	if src.Units != "" {
		data, err := readSource(ctx, client, src.Units)
		if err != nil {
			logger.Warn().Err(err).Str("source", src.Units).Msg("Unit overrides unavailable, using default units")
		} else {
			ref.Units = DecodeUnitTable(bytes.NewReader(data), src.Disabled...)
			if ref.Units.Len() == 0 {
				logger.Warn().Str("source", src.Units).Msg("Unit override table is empty or lacks metric_name, display_unit, input_mode columns")
			}
		}
	}

	if src.Catalog != "" {
		catalog, err := loadCatalog(ctx, client, src.Catalog)
		if err != nil {
			logger.Warn().Err(err).Str("source", src.Catalog).Msg("Metrics catalog unavailable")
		} else {
			ref.Catalog = catalog
		}
	}

	logger.Debug().
		Int("units", ref.Units.Len()).
		Int("catalog_metrics", len(ref.Catalog.Metrics())).
		Msg("Reference data loaded")
	return ref
}

func loadCatalog(ctx context.Context, client *http.Client, loc string) (*Catalog, error) {
	data, err := readSource(ctx, client, loc)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(loc)) {
	case ".yaml", ".yml":
		return DecodeCatalogYAML(bytes.NewReader(data))
	default:
		return DecodeCatalog(bytes.NewReader(data))
	}
}

// readSource reads a local file or fetches a remote URL.
func readSource(ctx context.Context, client *http.Client, loc string) ([]byte, error) {
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		data, err := wget(ctx, client, loc)
		if err != nil {
			return nil, fmt.Errorf("fetching %q: %w", loc, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(loc)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", loc, err)
	}
	return data, nil
}
