package orcas

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Catalog lists the metrics available for scoring, grouped by statement section.
type Catalog struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is a financial statement section ("income", "balance", "cashflow").
type Section struct {
	Key         string       `json:"key" yaml:"key"`
	Label       string       `json:"label" yaml:"label"`
	Description string       `json:"description,omitempty" yaml:"description"`
	Metrics     []MetricInfo `json:"metrics" yaml:"metrics"`
}

// MetricInfo describes one catalog metric.
type MetricInfo struct {
	Key           string     `json:"key" yaml:"key"`
	Label         string     `json:"label" yaml:"label"`
	Description   string     `json:"description,omitempty" yaml:"description"`
	Type          MetricType `json:"type,omitempty" yaml:"type"`
	DefaultWeight *float64   `json:"default_weight,omitempty" yaml:"default_weight"`
	Section       string     `json:"-" yaml:"-"` // set on decode from the enclosing section
}

// DecodeCatalog reads a catalog in the backend JSON shape.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c.link()
	return &c, nil
}

// DecodeCatalogYAML reads a catalog written in YAML with the same fields.
func DecodeCatalogYAML(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c.link()
	return &c, nil
}

func (c *Catalog) link() {
	for i := range c.Sections {
		s := &c.Sections[i]
		for j := range s.Metrics {
			s.Metrics[j].Section = s.Key
		}
	}
}

// Metrics returns every metric in section order.
func (c *Catalog) Metrics() []MetricInfo {
	if c == nil {
		return nil
	}
	var all []MetricInfo
	for _, s := range c.Sections {
		all = append(all, s.Metrics...)
	}
	return all
}

// Find returns the first metric whose key or label has the same NormalizeKey
// token as one of names, trying names in order.
func (c *Catalog) Find(names ...string) (MetricInfo, bool) {
	if c == nil {
		return MetricInfo{}, false
	}
	for _, name := range names {
		token := NormalizeKey(name)
		if token == "" {
			continue
		}
		for _, s := range c.Sections {
			for _, m := range s.Metrics {
				if NormalizeKey(m.Key) == token || NormalizeKey(m.Label) == token {
					return m, true
				}
			}
		}
	}
	return MetricInfo{}, false
}
